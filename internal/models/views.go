package models

// HomePageView is rendered at /.
type HomePageView struct {
	Content       HomepageContent `json:"content"`
	Announcements []Announcement  `json:"announcements"`
	Footer        FooterContent   `json:"footer"`
}

// ServicesPageView is rendered at /services.
type ServicesPageView struct {
	Services []Service     `json:"services"`
	Footer   FooterContent `json:"footer"`
}

// AboutPageView is rendered at /about.
type AboutPageView struct {
	About  AboutContent  `json:"about"`
	Footer FooterContent `json:"footer"`
}

// AdminContentView is rendered at /admin/content.
type AdminContentView struct {
	Services      []Service       `json:"services"`
	Announcements []Announcement  `json:"announcements"`
	Homepage      HomepageContent `json:"homepage"`
}

// AdminSettingsView is rendered at /admin/settings.
type AdminSettingsView struct {
	Settings   SystemSettings `json:"settings"`
	Currencies []Currency     `json:"currencies"`
	Countries  []Country      `json:"countries"`

	Notification *Notification `json:"notification,omitempty"`
}

// AdminUsersView is rendered at /admin/users.
type AdminUsersView struct {
	Users   []UserSummary `json:"users"`
	Pending []UserSummary `json:"pending"`

	Notification *Notification `json:"notification,omitempty"`
}
