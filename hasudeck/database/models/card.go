// models/card.go
package models

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID            string      `bun:"id,pk"`
	Name          string      `bun:"name,notnull"`
	Rarity        string      `bun:"rarity,notnull"`
	CharacterName string      `bun:"character_name,notnull"`
	StyleType     string      `bun:"style_type,type:text,default:''"`
	LimitedType   string      `bun:"limited_type,type:text,default:''"`
	FavoriteMode  string      `bun:"favorite_mode,type:text,default:''"`
	ReleaseDate   string      `bun:"release_date,type:text,default:''"`
	Detail        *CardDetail `bun:"detail,type:jsonb"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type CardDetail struct {
	SkillName         string      `json:"skill_name"`
	SkillText         string      `json:"skill_text"`
	TraitName         string      `json:"trait_name"`
	TraitText         string      `json:"trait_text"`
	SpecialAppealName string      `json:"special_appeal_name"`
	SpecialAppealText string      `json:"special_appeal_text"`
	Accessories       []Accessory `json:"accessories,omitempty"`
}

type Accessory struct {
	Name      string `json:"name"`
	SkillText string `json:"skill_text"`
	TraitText string `json:"trait_text"`
}

// ToDomain converts the stored row into the engine-facing card type.
func (c *Card) ToDomain() *cards.Card {
	card := &cards.Card{
		ID:            c.ID,
		Name:          c.Name,
		Rarity:        cards.Rarity(c.Rarity),
		CharacterName: c.CharacterName,
		StyleType:     cards.StyleType(c.StyleType),
		LimitedType:   cards.LimitedType(c.LimitedType),
		FavoriteMode:  cards.FavoriteMode(c.FavoriteMode),
		ReleaseDate:   c.ReleaseDate,
	}
	if c.Detail != nil {
		detail := &cards.CardDetail{
			SkillName:         c.Detail.SkillName,
			SkillText:         c.Detail.SkillText,
			TraitName:         c.Detail.TraitName,
			TraitText:         c.Detail.TraitText,
			SpecialAppealName: c.Detail.SpecialAppealName,
			SpecialAppealText: c.Detail.SpecialAppealText,
		}
		for _, a := range c.Detail.Accessories {
			detail.Accessories = append(detail.Accessories, cards.Accessory{
				Name:      a.Name,
				SkillText: a.SkillText,
				TraitText: a.TraitText,
			})
		}
		card.Detail = detail
	}
	return card
}

// FromDomain converts an engine-facing card into a storable row.
func FromDomain(card *cards.Card) *Card {
	row := &Card{
		ID:            card.ID,
		Name:          card.Name,
		Rarity:        string(card.Rarity),
		CharacterName: card.CharacterName,
		StyleType:     string(card.StyleType),
		LimitedType:   string(card.LimitedType),
		FavoriteMode:  string(card.FavoriteMode),
		ReleaseDate:   card.ReleaseDate,
	}
	if card.Detail != nil {
		detail := &CardDetail{
			SkillName:         card.Detail.SkillName,
			SkillText:         card.Detail.SkillText,
			TraitName:         card.Detail.TraitName,
			TraitText:         card.Detail.TraitText,
			SpecialAppealName: card.Detail.SpecialAppealName,
			SpecialAppealText: card.Detail.SpecialAppealText,
		}
		for _, a := range card.Detail.Accessories {
			detail.Accessories = append(detail.Accessories, Accessory{
				Name:      a.Name,
				SkillText: a.SkillText,
				TraitText: a.TraitText,
			})
		}
		row.Detail = detail
	}
	return row
}
