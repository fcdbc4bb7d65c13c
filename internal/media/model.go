package media

type Folder string

const (
	FolderProfileImages Folder = "profile_images"
	FolderStoreCovers   Folder = "store_covers"
	FolderProducts      Folder = "products"
)

func (f Folder) Valid() bool {
	switch f {
	case FolderProfileImages, FolderStoreCovers, FolderProducts:
		return true
	}
	return false
}

// File is an uploaded object. Key is what the other resources store.
type File struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
