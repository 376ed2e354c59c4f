// Package tabs is the presentation state of the hosting tabs of one event:
// which of the catalog, the forms or the user's requests is shown.
package tabs

import (
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
)

type State int

const (
	Catalog State = iota
	CreateHostingForm
	CreateRequestForm
	MyRequests
)

func (s State) String() string {
	switch s {
	case Catalog:
		return "CATALOG"
	case CreateHostingForm:
		return "CREATE_HOSTING_FORM"
	case CreateRequestForm:
		return "CREATE_REQUEST_FORM"
	case MyRequests:
		return "MY_REQUESTS"
	default:
		return "UNKNOWN"
	}
}

// Controller is not safe for concurrent use; adapters keep one per user view.
type Controller struct {
	EventID  uint
	state    State
	selected *entities.Hosting
}

func NewController(eventID uint) *Controller {
	return &Controller{EventID: eventID, state: Catalog}
}

func (c *Controller) State() State { return c.state }

// Selected is the hosting of the request form, nil in any other state.
func (c *Controller) Selected() *entities.Hosting {
	if c.state != CreateRequestForm {
		return nil
	}
	return c.selected
}

// ProposeHosting opens the hosting form from the catalog.
func (c *Controller) ProposeHosting() bool {
	if c.state != Catalog {
		return false
	}
	c.state = CreateHostingForm
	return true
}

// SelectHosting opens the request form for h when its verdict allows it.
// Unknown hostings (absent from verdicts) are refused.
func (c *Controller) SelectHosting(h entities.Hosting, verdicts map[uint]eligibility.Verdict) bool {
	if c.state != Catalog {
		return false
	}
	v, ok := verdicts[h.ID]
	if !ok || !v.Selectable() {
		return false
	}
	c.state = CreateRequestForm
	c.selected = &h
	return true
}

// ShowMyRequests switches from the catalog to the user's requests.
func (c *Controller) ShowMyRequests() bool {
	if c.state != Catalog {
		return false
	}
	c.state = MyRequests
	return true
}

// ShowCatalog returns to the catalog from the requests tab.
func (c *Controller) ShowCatalog() bool {
	if c.state != MyRequests {
		return false
	}
	c.state = Catalog
	return true
}

// Cancel closes the open form.
func (c *Controller) Cancel() bool { return c.closeForm() }

// Succeed closes the open form after its command was issued.
func (c *Controller) Succeed() bool { return c.closeForm() }

func (c *Controller) closeForm() bool {
	if c.state != CreateHostingForm && c.state != CreateRequestForm {
		return false
	}
	c.state = Catalog
	c.selected = nil
	return true
}
