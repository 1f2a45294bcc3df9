package jsonld

// ContactType labels every contact point, whichever contact fields are set.
const ContactType = "Customer Support"

// Organization describes a company or site owner.
type Organization struct {
	Name         string   `json:"name" yaml:"name"`
	URL          string   `json:"url" yaml:"url"`
	LogoURL      string   `json:"logo-url" yaml:"logo-url"`
	Description  string   `json:"description" yaml:"description"`
	SocialURLs   []string `json:"social-urls,omitempty" yaml:"social-urls,omitempty"`
	ContactEmail string   `json:"contact-email,omitempty" yaml:"contact-email,omitempty"`
	ContactPhone string   `json:"contact-phone,omitempty" yaml:"contact-phone,omitempty"`
}

// Build returns an Organization document. contactPoint is only present when
// an email or a phone number is given.
func (o Organization) Build() Result {
	doc := newDocument("Organization")
	doc["name"] = o.Name
	doc["url"] = o.URL
	doc["logo"] = o.LogoURL
	doc["description"] = o.Description

	if len(o.SocialURLs) > 0 {
		doc["sameAs"] = cloneStrings(o.SocialURLs)
	}

	if o.ContactEmail != "" || o.ContactPhone != "" {
		contact := map[string]any{
			"@type":       "ContactPoint",
			"contactType": ContactType,
		}
		if o.ContactEmail != "" {
			contact["email"] = o.ContactEmail
		}
		if o.ContactPhone != "" {
			contact["telephone"] = o.ContactPhone
		}
		doc["contactPoint"] = contact
	}

	return Result{Document: doc}
}
