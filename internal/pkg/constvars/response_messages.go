package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Availability messages
	GetAvailabilityCalendarSuccessMessage = "get availability calendar successfully"
	SetAvailabilitySuccessMessage         = "availability successfully updated for guide"

	// Guide messages
	CreateGuideSuccessMessage      = "guide created successfully"
	GetGuidesSuccessMessage        = "get guides successfully"
	GetGuideSuccessMessage         = "get guide successfully"
	UpdateGuideSuccessMessage      = "guide updated successfully"
	DeleteGuideSuccessMessage      = "guide deleted successfully"
	UploadGuidePhotoSuccessMessage = "guide photo uploaded successfully"

	// Trail messages
	CreateTrailSuccessMessage = "trail created successfully"
	GetTrailsSuccessMessage   = "get trails successfully"
	GetTrailSuccessMessage    = "get trail successfully"
	UpdateTrailSuccessMessage = "trail updated successfully"
	DeleteTrailSuccessMessage = "trail deleted successfully"

	// Auth messages
	RegisterSuccessMessage   = "user registered successfully"
	LoginSuccessMessage      = "successfully login"
	LogoutSuccessMessage     = "successfully logout"
	GetProfileSuccessMessage = "get profile successfully"
)
