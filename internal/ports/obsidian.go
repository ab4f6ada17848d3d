package ports

// FileOpener opens a file in an external application
type FileOpener interface {
	OpenFile(path string) error
}

// ObsidianOpener opens notes in Obsidian using the obsidian:// URI scheme
type ObsidianOpener interface {
	FileOpener

	// BuildURI returns the obsidian:// URI for an absolute file path inside the vault
	BuildURI(filePath string) (string, error)
}
