package httpapi

import (
	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/domain/roster"
)

type applicationRequest struct {
	Name    string `json:"name" validate:"required"`
	Discord string `json:"discord" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
}

func (r applicationRequest) toDomain() application.Application {
	return application.Application{
		Name:    r.Name,
		Discord: r.Discord,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}

type joinRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Discord   string `json:"discord" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Over18    string `json:"over18" validate:"required"`
}

type joinResponseData struct {
	ID int64 `json:"id"`
}

type gameSlugDTO struct {
	Game string `json:"game"`
	Slug string `json:"slug"`
}

type playerDTO struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type teamDataDTO struct {
	Game        string      `json:"game"`
	Logo        string      `json:"logo"`
	Description string      `json:"description"`
	Players     []playerDTO `json:"players"`
	Slug        string      `json:"slug"`
}

func teamDataToDTO(data roster.TeamData) teamDataDTO {
	players := make([]playerDTO, 0, len(data.Players))
	for _, p := range data.Players {
		players = append(players, playerDTO{Name: p.Name, Role: p.Role, Image: p.Image})
	}
	return teamDataDTO{
		Game:        data.Game,
		Logo:        data.Logo,
		Description: data.Description,
		Players:     players,
		Slug:        data.Slug,
	}
}
