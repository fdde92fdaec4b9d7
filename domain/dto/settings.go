package dto

type SettingsResponse struct {
	StudentName       string `json:"studentName"`
	XPLight           int    `json:"xpLight"`
	XPStandard        int    `json:"xpStandard"`
	XPChallenging     int    `json:"xpChallenging"`
	JarTarget         int    `json:"jarTarget"`
	SoundEnabled      bool   `json:"soundEnabled"`
	Theme             string `json:"theme"`
	ParentLockEnabled bool   `json:"parentLockEnabled"`
}

// UpdateSettingsRequest uses pointers so omitted fields keep their
// current values.
type UpdateSettingsRequest struct {
	StudentName   *string `json:"studentName" validate:"omitempty,max=100"`
	XPLight       *int    `json:"xpLight" validate:"omitempty,min=1,max=1000"`
	XPStandard    *int    `json:"xpStandard" validate:"omitempty,min=1,max=1000"`
	XPChallenging *int    `json:"xpChallenging" validate:"omitempty,min=1,max=1000"`
	JarTarget     *int    `json:"jarTarget" validate:"omitempty,min=1,max=100000"`
	SoundEnabled  *bool   `json:"soundEnabled"`
	Theme         *string `json:"theme" validate:"omitempty,oneof=light dark"`
}

type SetParentLockRequest struct {
	Secret string `json:"secret" validate:"required,min=4,max=64"`
}

// ClearDataRequest wipes tasks, jars and history. When the parent lock
// is enabled the stored secret must be supplied.
type ClearDataRequest struct {
	Confirm string `json:"confirm" validate:"required,eq=DELETE"`
	Secret  string `json:"secret"`
}
