package dtos

// UploadFileRequest is one file from the picker.
type UploadFileRequest struct {
	Name     string `json:"name" binding:"required"`
	Size     int64  `json:"size" binding:"required,gt=0"`
	MimeType string `json:"mimeType"`
}

// UploadRequest starts a simulated upload of one or more files.
type UploadRequest struct {
	Files []UploadFileRequest `json:"files" binding:"required,min=1,dive"`
}
