package jsonld

// DefaultPublisherName is used when an Article has no publisher name.
const DefaultPublisherName = "Your Site"

// Article describes a blog post or news article. Dates are YYYY-MM-DD
// strings (see FormatDate).
type Article struct {
	Headline         string `json:"headline" yaml:"headline"`
	Description      string `json:"description" yaml:"description"`
	AuthorName       string `json:"author-name" yaml:"author-name"`
	DatePublished    string `json:"date-published" yaml:"date-published"`
	DateModified     string `json:"date-modified,omitempty" yaml:"date-modified,omitempty"`
	ImageURL         string `json:"image-url,omitempty" yaml:"image-url,omitempty"`
	PageURL          string `json:"page-url,omitempty" yaml:"page-url,omitempty"`
	PublisherName    string `json:"publisher-name,omitempty" yaml:"publisher-name,omitempty"`
	PublisherLogoURL string `json:"publisher-logo-url,omitempty" yaml:"publisher-logo-url,omitempty"`
}

// Build returns an Article document with nested author and publisher.
func (a Article) Build() Result {
	publisherName := a.PublisherName
	if publisherName == "" {
		publisherName = DefaultPublisherName
	}
	publisher := map[string]any{
		"@type": "Organization",
		"name":  publisherName,
	}
	if a.PublisherLogoURL != "" {
		publisher["logo"] = map[string]any{
			"@type": "ImageObject",
			"url":   a.PublisherLogoURL,
		}
	}

	doc := newDocument("Article")
	doc["headline"] = a.Headline
	doc["description"] = a.Description
	doc["author"] = map[string]any{
		"@type": "Person",
		"name":  a.AuthorName,
	}
	doc["publisher"] = publisher
	doc["datePublished"] = a.DatePublished

	if a.DateModified != "" {
		doc["dateModified"] = a.DateModified
	} else {
		doc["dateModified"] = a.DatePublished
	}
	if a.ImageURL != "" {
		doc["image"] = a.ImageURL
	}
	if a.PageURL != "" {
		doc["mainEntityOfPage"] = map[string]any{
			"@type": "WebPage",
			"@id":   a.PageURL,
		}
	}

	return Result{Document: doc}
}
