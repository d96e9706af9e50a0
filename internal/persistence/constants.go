package persistence

// Error message fragments
const (
	ErrMsgMissingState      = "snapshot has no state"
	ErrMsgUnknownUpgrade    = "unknown upgrade"
	ErrMsgUnknownPlant      = "unknown plant"
	ErrMsgPlantedKindsOrder = "planted kinds not sorted"
	ErrMsgNotBase64         = "blob is not base64"
	ErrMsgCropLevel         = "crop level disagrees with harvest count"
)

// Log messages
const (
	LogMsgNewerSchema     = "Snapshot written by a newer version, loading known fields"
	LogMsgSlotCorrupt     = "Save slot unreadable, trying next"
	LogMsgLoadedFresh     = "No usable save found, starting fresh"
	LogMsgLoaded          = "Save loaded"
	LogMsgBackupFailed    = "Failed to copy primary save to backup"
	LogMsgSaved           = "Save written"
	LogMsgImportRejected  = "Portable save rejected"
	LogMsgImportCompleted = "Portable save imported"
)

// File backend settings
const (
	fileSuffix      = ".json"
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// gdataObject is the gdata object holding one property per slot
const gdataObject = "saves"
