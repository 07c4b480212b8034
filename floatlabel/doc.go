// Package floatlabel models a text input whose placeholder floats above the
// text once the user types, with an attached error display.
//
// The model is headless. Drawing and animation belong to the host toolkit,
// which reads [Field.State] after each event.
//
//	email := floatlabel.NewField("email", "Email",
//	    fieldvalidation.Required("Email is required"),
//	    fieldvalidation.Email("Invalid email"),
//	)
//	form := floatlabel.NewForm([]*floatlabel.Field{email})
//	email.SetText("ann@")
//	if err := form.Submit(); err != nil {
//	    // email.State().Error == "Invalid email"
//	}
package floatlabel
