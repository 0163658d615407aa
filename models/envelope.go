package models

// Meta carries list metadata alongside catalog responses.
type Meta struct {
	Total int `json:"total"`
}

// Envelope is the uniform list response shape for catalog endpoints.
type Envelope struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}
