package constants

type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
)

type UserType string

const (
	UserIndividual UserType = "individual"
	UserCompany    UserType = "company"
)

type Category string

const (
	CategoryFullstack Category = "fullstack"
	CategoryBackend   Category = "backend"
	CategoryFrontend  Category = "frontend"
	CategoryMobile    Category = "mobile"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyAUD Currency = "AUD"
	CurrencyINR Currency = "INR"
	CurrencySGD Currency = "SGD"
)

type WorkNature string

const (
	WorkOnsite WorkNature = "onsite"
	WorkOnline WorkNature = "online"
)

// ListingPolicy selects which tasks a provider sees when listing.
type ListingPolicy string

const (
	ListOpen            ListingPolicy = "open"
	ListAssigned        ListingPolicy = "assigned"
	ListOpenAndAssigned ListingPolicy = "open_and_assigned"
)

func (p ListingPolicy) IsValid() bool {
	switch p {
	case ListOpen, ListAssigned, ListOpenAndAssigned:
		return true
	}
	return false
}
