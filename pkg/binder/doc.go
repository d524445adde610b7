// Package binder extracts request parameters from HTTP requests and binds
// validated parameters to structs.
//
// Params merges the query string with urlencoded or multipart form bodies and,
// with WithPathParams, chi route parameters. The result implements
// validator.Params so it can be checked by a validation chain before any
// business logic runs.
//
//	type search struct {
//		Query string    `param:"q"`
//		Page  int       `param:"page"`
//		Since time.Time `param:"since,local-date"`
//		Tags  []string  `param:"tags"`
//	}
//
//	params, err := binder.Params()(r)
//	if err != nil {
//		return err
//	}
//	var s search
//	if err := binder.Bind(params, &s); err != nil {
//		return err
//	}
package binder
