// Package rules turns declarative parameter rules into validator chains.
//
// Handlers declare their parameters as an ordered list of Descriptor values,
// either in code through the Declarer interface or in a YAML Manifest. A
// Registry holds the Processors that recognise descriptor kinds and build the
// matching validator.Constraint. The registry is explicit: processors are
// registered at startup, and the first Build seals it.
//
// # Usage
//
//	type showUser struct{}
//
//	func (showUser) Parameters() []rules.Descriptor {
//	    return []rules.Descriptor{
//	        rules.LongParameter("id", rules.Between(1, 1<<31)),
//	        rules.Parameter("fields", rules.Optional(), rules.Matching(`[a-z,]+`)),
//	        rules.TemporalParameter("since", rules.Optional(), rules.As(validator.LocalDate)),
//	    }
//	}
//
//	reg := rules.Default()
//	chain, err := reg.ForHandler(showUser{})
//
// # Extension
//
// Additional kinds are plugged in with Register:
//
//	reg.Register(rules.NewProcessor(func(d rules.Descriptor) (validator.Constraint, error) {
//	    return newSlugConstraint(d.Name, d.IsRequired())
//	}, "slug"))
//
// Every processor inspects every descriptor. Descriptors nobody accepts are
// skipped silently; a descriptor accepted by several processors contributes one
// constraint per processor, in registration order.
package rules
