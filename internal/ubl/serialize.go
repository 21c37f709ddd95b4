package ubl

import "github.com/beevik/etree"

// Serialize pretty-prints the assembled document. Suppression of absent
// nodes already happened at construction time; nothing is pruned here.
func Serialize(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	return doc.WriteToBytes()
}
