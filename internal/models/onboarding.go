package models

// Upload is a file received with a form submission.
type Upload struct {
	Filename string
	Content  []byte
}

// Present reports whether a non-empty file was uploaded.
func (u *Upload) Present() bool {
	return u != nil && len(u.Content) > 0
}

// DirectorInput is one director block of the registration form.
type DirectorInput struct {
	FirstName string
	LastName  string
	IDFile    *Upload
	KRAFile   *Upload
}

// RegistrationRequest is the company registration form.
type RegistrationRequest struct {
	BusinessType    string `form:"businessType"`
	CompanyName     string `form:"companyName"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	COINumber       string `form:"coiNumber"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`

	COIFile        *Upload         `form:"-"`
	CR12File       *Upload         `form:"-"`
	CompanyKRAFile *Upload         `form:"-"`
	Directors      []DirectorInput `form:"-"`
}

// KYCRequest is the identity verification form.
type KYCRequest struct {
	IDNumber    string `form:"idNumber"`
	KRAPin      string `form:"kraPin"`
	DateOfBirth string `form:"dateOfBirth"`
	Address     string `form:"address"`
	City        string `form:"city"`
	Country     string `form:"country"`

	IDDocument *Upload `form:"-"`
	Selfie     *Upload `form:"-"`
}

// FormField describes one input of a rendered form.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// FormView is the view model of a form page.
type FormView struct {
	Title  string      `json:"title"`
	Action string      `json:"action"`
	Fields []FormField `json:"fields"`
}

// ReconcileReport summarises one onboarding reconciliation sweep.
type ReconcileReport struct {
	Checked  int      `json:"checked"`
	Orphans  []string `json:"orphans"`
	Repaired int      `json:"repaired"`
}
