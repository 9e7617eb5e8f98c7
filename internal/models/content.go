package models

// Singleton content documents.
const (
	CollectionHomepage = "homepageContent"
	CollectionAbout    = "about"
	CollectionFooter   = "footer"
	ContentDocumentID  = "main"

	DefaultServiceIcon = "CreditCard"
	DefaultCTAButton   = "Create Free Account"
	DefaultCompanyName = "Oripay Exchange"
)

// Feature is a titled bullet used by the homepage and service entries.
type Feature struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Region is a corridor advertised on the homepage.
type Region struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Flag string `bson:"flag" json:"flag"`
}

// HomepageContent is stored at homepageContent/main.
type HomepageContent struct {
	HeroTitle    string    `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle string    `bson:"heroSubtitle" json:"heroSubtitle"`
	HeroCTA      string    `bson:"heroCTA" json:"heroCTA"`
	Features     []Feature `bson:"features" json:"features"`
	Regions      []Region  `bson:"regions" json:"regions"`
	CTATitle     string    `bson:"ctaTitle" json:"ctaTitle"`
	CTASubtitle  string    `bson:"ctaSubtitle" json:"ctaSubtitle"`
	CTAButton    string    `bson:"ctaButton" json:"ctaButton"`
}

// DefaultHomepageContent is shown when nothing has been saved yet.
func DefaultHomepageContent() HomepageContent {
	return HomepageContent{
		HeroTitle:    "Send money across borders",
		HeroSubtitle: "Fast, secure and affordable cross-border payments",
		HeroCTA:      "Move money between Africa and the world in minutes.",
		Features:     []Feature{},
		Regions:      []Region{},
		CTATitle:     "Ready to get started?",
		CTASubtitle:  "Open an account in minutes.",
		CTAButton:    DefaultCTAButton,
	}
}

// Stat is a figure on the about page.
type Stat struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Value is a company value on the about page.
type Value struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// AboutContent is stored at about/main.
type AboutContent struct {
	HeroTitle    string   `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle string   `bson:"heroSubtitle" json:"heroSubtitle"`
	Stats        []Stat   `bson:"stats" json:"stats"`
	Story        []string `bson:"story" json:"story"`
	Values       []Value  `bson:"values" json:"values"`
	MissionTitle string   `bson:"missionTitle" json:"missionTitle"`
	MissionText  string   `bson:"missionText" json:"missionText"`
	VisionTitle  string   `bson:"visionTitle" json:"visionTitle"`
	VisionText   string   `bson:"visionText" json:"visionText"`
}

// DefaultAboutContent returns an empty about page.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		Stats:  []Stat{},
		Story:  []string{},
		Values: []Value{},
	}
}

// Contact holds the footer contact block.
type Contact struct {
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Location string `bson:"location" json:"location"`
}

// QuickLink is a footer navigation link.
type QuickLink struct {
	Name string `bson:"name" json:"name"`
	Path string `bson:"path" json:"path"`
}

// Socials holds the footer social profile links.
type Socials struct {
	Facebook  string `bson:"facebook" json:"facebook"`
	Twitter   string `bson:"twitter" json:"twitter"`
	Instagram string `bson:"instagram" json:"instagram"`
	LinkedIn  string `bson:"linkedin" json:"linkedin"`
}

// FooterContent is stored at footer/main.
type FooterContent struct {
	CompanyName string      `bson:"companyName" json:"companyName"`
	Description string      `bson:"description" json:"description"`
	Contact     Contact     `bson:"contact" json:"contact"`
	QuickLinks  []QuickLink `bson:"quickLinks" json:"quickLinks"`
	Services    []string    `bson:"services" json:"services"`
	Socials     Socials     `bson:"socials" json:"socials"`
}

// DefaultFooterContent returns the footer used before an admin saves one.
func DefaultFooterContent() FooterContent {
	return FooterContent{
		CompanyName: DefaultCompanyName,
		QuickLinks: []QuickLink{
			{Name: "Home", Path: "/"},
			{Name: "Services", Path: "/services"},
			{Name: "About Us", Path: "/about"},
			{Name: "Login", Path: "/login"},
		},
		Services: []string{},
	}
}

// Service is a document in the services collection.
type Service struct {
	ID          string    `bson:"-" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
	Features    []Feature `bson:"features" json:"features"`
	Active      bool      `bson:"active" json:"active"`
}

// DefaultService returns the defaults applied to a service entry.
func DefaultService() Service {
	return Service{
		Icon:     DefaultServiceIcon,
		Features: []Feature{},
		Active:   true,
	}
}

// Announcement is a document in the announcements collection.
type Announcement struct {
	ID      string `bson:"-" json:"id"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
	Active  bool   `bson:"active" json:"active"`
}

// DefaultAnnouncement returns the defaults applied to an announcement.
func DefaultAnnouncement() Announcement {
	return Announcement{Active: true}
}
