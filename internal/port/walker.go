package port

// FileWalker lists the corpus files under root.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string // Absolute path
	RelPath string // Path relative to the walked root, slash separated
	Size    int64
}
