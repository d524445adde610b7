package main

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/paramguard/handler"
	"github.com/dmitrymomot/paramguard/pkg/rules"
	"github.com/dmitrymomot/paramguard/pkg/xmlout"
)

type user struct {
	ID      string
	Name    string
	Email   string
	Created time.Time
}

// directory is a fixed in-memory user list.
var directory = []user{
	{ID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", Name: "Ada Lovelace", Email: "ada@example.com", Created: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
	{ID: "6ba7b811-9dad-11d1-80b4-00c04fd430c8", Name: "Alan Turing", Email: "alan@example.com", Created: time.Date(2022, 6, 23, 0, 0, 0, 0, time.UTC)},
}

func writeUser(out *xmlout.Writer, u user) {
	out.OpenElement("user")
	out.Attribute("id", u.ID)
	out.Attribute("created", u.Created.Format(time.DateOnly))
	out.Element("name", u.Name)
	out.Element("email", u.Email)
	out.CloseElement()
}

// userPage shows one user; its rules are declared on the type.
type userPage struct{}

func (userPage) Parameters() []rules.Descriptor {
	return []rules.Descriptor{
		rules.UUIDParameter("id"),
		rules.ChoiceParameter("format", rules.OneOf("full", "short"), rules.Optional()),
	}
}

func (userPage) Generate(ctx handler.Context, req *handler.Request, out *xmlout.Writer) (int, error) {
	id, err := req.Param("id")
	if err != nil {
		return 0, err
	}
	for _, u := range directory {
		if u.ID != id {
			continue
		}
		if req.ParamOr("format", "full") == "short" {
			out.Element("user", u.Name)
		} else {
			writeUser(out, u)
		}
		return http.StatusOK, nil
	}
	return 0, handler.NewRequestError(http.StatusNotFound, "user not found", nil)
}

type searchQuery struct {
	Query string `param:"q"`
	Page  int64  `param:"page"`
	Sort  string `param:"sort"`
}

const pageSize = 10

func searchUsers(ctx handler.Context, req *handler.Request, out *xmlout.Writer) (int, error) {
	q := searchQuery{Page: 1, Sort: "name"}
	if err := req.Bind(&q); err != nil {
		return 0, err
	}

	needle := strings.ToLower(q.Query)
	var found []user
	for _, u := range directory {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			found = append(found, u)
		}
	}

	out.OpenElement("users")
	out.Attribute("query", q.Query)
	out.AttributeInt("page", q.Page)
	out.Attribute("sort", q.Sort)
	start := (q.Page - 1) * pageSize
	for i := start; i < int64(len(found)) && i < start+pageSize; i++ {
		writeUser(out, found[i])
	}
	out.CloseElement()
	return http.StatusOK, nil
}

type registration struct {
	Name     string     `param:"name"`
	Email    string     `param:"email"`
	Age      int        `param:"age"`
	Birthday *time.Time `param:"birthday"`
}

func registerUser(ctx handler.Context, req *handler.Request, out *xmlout.Writer) (int, error) {
	var reg registration
	if err := req.Bind(&reg); err != nil {
		return 0, err
	}
	if req.ParamOr("then", "") == "search" {
		return req.RedirectSeeOther("/users?q=" + url.QueryEscape(reg.Name)), nil
	}

	out.OpenElement("registration")
	out.Attribute("email", reg.Email)
	out.AttributeInt("age", int64(reg.Age))
	if reg.Birthday != nil {
		out.Attribute("birthday", reg.Birthday.Format(time.DateOnly))
	}
	out.Text(reg.Name)
	out.CloseElement()
	return http.StatusCreated, nil
}
