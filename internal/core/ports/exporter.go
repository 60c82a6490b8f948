package ports

// Exporter stores an encoded image under the given name and returns where it
// ended up.
type Exporter interface {
	Export(filename string, data []byte) (string, error)
}
