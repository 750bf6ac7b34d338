package option

const (
	KB = 1 << 10
	MB = 1 << 20
)

// Option for reading the integer source.
type Option struct {
	// Path is the data file to read.
	Path string

	// BufferSize caps the length of a single token.
	BufferSize int
}

// DefaultOption
var DefaultOption = &Option{
	Path:       "data1.txt",
	BufferSize: 64 * KB,
}
