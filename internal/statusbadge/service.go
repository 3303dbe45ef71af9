package statusbadge

import (
	"errors"
	"strings"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
)

var ErrInvalidStatus = errors.New("status must be online, away or offline")

type Page struct {
	status Status
	label  string
}

type UpdateDTO struct {
	Status *Status `json:"status" validate:"omitempty,oneof=online away offline"`
	Label  *string `json:"label"`
}

type View struct {
	Samples []Badge `json:"samples"`
	Status  Status  `json:"status"`
	Label   string  `json:"label"`
	Badge   Badge   `json:"badge"`
}

func NewPage() *Page {
	return &Page{status: Online, label: "Sasho"}
}

func (p *Page) Update(dto UpdateDTO) error {
	if err := apperr.Validate(dto, ErrInvalidStatus); err != nil {
		return err
	}

	if dto.Status != nil {
		p.status = *dto.Status
	}
	if dto.Label != nil {
		p.label = *dto.Label
	}
	return nil
}

func (p *Page) View() View {
	samples := make([]Badge, 0, len(AllStatuses))
	for _, s := range AllStatuses {
		samples = append(samples, NewBadge(s, ""))
	}

	label := p.label
	if strings.TrimSpace(label) == "" {
		label = ""
	}

	return View{
		Samples: samples,
		Status:  p.status,
		Label:   p.label,
		Badge:   NewBadge(p.status, label),
	}
}
