package docs

// Partner is an account holder.
type Partner struct {
	dummyAccount bool
}

type PartnerAccount struct{} // want `exported type PartnerAccount should have a documentation comment`

// holds mapping data // want `documentation for PartnerAccountData should start with "PartnerAccountData"`
type PartnerAccountData struct{}

// PartnerMapper maps accounts to partners // want `first sentence of the documentation for PartnerMapper should end with a period`
type PartnerMapper struct{}

// A Sample is accepted with a leading article.
type Sample struct{}

// NewPartner creates a partner. The account flag
// is copied verbatim.
func NewPartner(dummy bool) *Partner {
	return &Partner{dummyAccount: dummy}
}

func ToPartner(a PartnerAccount) *Partner { // want `exported function ToPartner should have a documentation comment`
	return nil
}

func (p *Partner) DummyAccount() bool { // want `exported method DummyAccount should have a documentation comment`
	return p.dummyAccount
}

// SetDummyAccount sets the flag.
func (p *Partner) SetDummyAccount(v bool) {
	p.dummyAccount = v
}

func (sampleHelper) Exported() {}

type sampleHelper struct{}

// Limits of the mapper.
const (
	MaxDepth = 3
	MaxWidth = 10
)

const (
	// DefaultName is used when no name is set.
	DefaultName = "partner"
	Fallback    = "none" // want `exported constant Fallback should have a documentation comment`
)

var Registry = map[string]Partner{} // want `exported variable Registry should have a documentation comment`

//nolint:style
type Suppressed struct{}

func internalHelper() {}
