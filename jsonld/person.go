package jsonld

// Person describes an author or site owner.
type Person struct {
	Name        string   `json:"name" yaml:"name"`
	URL         string   `json:"url" yaml:"url"`
	JobTitle    string   `json:"job-title" yaml:"job-title"`
	Description string   `json:"description" yaml:"description"`
	ImageURL    string   `json:"image-url,omitempty" yaml:"image-url,omitempty"`
	SocialURLs  []string `json:"social-urls,omitempty" yaml:"social-urls,omitempty"`
	KnowsAbout  []string `json:"knows-about,omitempty" yaml:"knows-about,omitempty"`
}

func (p Person) Build() Result {
	doc := newDocument("Person")
	doc["name"] = p.Name
	doc["url"] = p.URL
	doc["jobTitle"] = p.JobTitle
	doc["description"] = p.Description

	if p.ImageURL != "" {
		doc["image"] = p.ImageURL
	}
	if len(p.SocialURLs) > 0 {
		doc["sameAs"] = cloneStrings(p.SocialURLs)
	}
	if len(p.KnowsAbout) > 0 {
		doc["knowsAbout"] = cloneStrings(p.KnowsAbout)
	}

	return Result{Document: doc}
}
