package models

import "time"

// Download is a downloadable file entry backed by an object in the
// blob store.
//
// Deleting an entry removes both the database record and the stored
// object; the two deletions are not transactional, so a partial
// failure is surfaced as a distinguishable error instead of success.
type Download struct {
	FileID string `json:"id"`

	// Title is the display name shown in download listings.
	Title string `json:"title"`

	// Filename is the original uploaded file name.
	Filename string `json:"filename"`

	MimeType string `json:"mimetype"`
	Size     int64  `json:"size"`

	// FileURL is the public URL of the stored object.
	FileURL string `json:"fileUrl"`

	// ObjectID is the blob store key used for deletion and presigned
	// downloads. Hidden from listings.
	ObjectID string `json:"-"`

	// ImagePath is the associated thumbnail path.
	ImagePath string `json:"imagePath"`

	// UploadedBy is the uploading account id; empty when the uploader
	// is unknown.
	UploadedBy string `json:"uploadedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Download model.
func (d Download) TableName() string {
	return "downloads"
}
