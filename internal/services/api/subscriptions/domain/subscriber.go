package domain

// SubscribeInput is the urlencoded body of POST /subscriptions
// pointers stay nil for absent keys so binding can answer 422 before any domain rule runs
type SubscribeInput struct {
	Name  *string `form:"name" validate:"required"`
	Email *string `form:"email" validate:"required"`
}

// Form returns the raw fields, absent keys read as ""
func (in SubscribeInput) Form() SubscribeForm {
	var f SubscribeForm
	if in.Name != nil {
		f.Name = *in.Name
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	return f
}

// SubscribeForm is untrusted intake data
type SubscribeForm struct {
	Name  string
	Email string
}

// NewSubscriber is a validated email and name pair ready to be stored
// only ParseNewSubscriber builds a non-zero one
type NewSubscriber struct {
	email SubscriberEmail
	name  SubscriberName
}

// ParseNewSubscriber validates the email, then the name, and reports the first failure
func ParseNewSubscriber(form SubscribeForm) (NewSubscriber, error) {
	email, err := ParseSubscriberEmail(form.Email)
	if err != nil {
		return NewSubscriber{}, err
	}
	name, err := ParseSubscriberName(form.Name)
	if err != nil {
		return NewSubscriber{}, err
	}
	return NewSubscriber{email: email, name: name}, nil
}

// Email returns the validated address
func (s NewSubscriber) Email() SubscriberEmail { return s.email }

// Name returns the validated name
func (s NewSubscriber) Name() SubscriberName { return s.name }

// IsZero reports whether s skipped ParseNewSubscriber
func (s NewSubscriber) IsZero() bool { return s.email.IsZero() || s.name.IsZero() }
