package models

// Upload is a request to add a document to the catalog. Content holds the
// raw (decoded) document bytes; sizing and encoding are derived from it.
type Upload struct {
	Filename string
	Category Category
	Content  []byte
}
