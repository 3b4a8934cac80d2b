package service

import (
	"context"

	"github.com/plsapi/backend/internal/db"
	"github.com/plsapi/backend/internal/model"
)

// Gate implements the three authorization stages. Each stage consumes the
// result of the previous one.
type Gate struct {
	codec       *TokenCodec
	actionneurs ActionneurRepository
}

func NewGate(codec *TokenCodec, actionneurs ActionneurRepository) *Gate {
	return &Gate{codec: codec, actionneurs: actionneurs}
}

// Authenticate returns the subject of a valid bearer token.
func (g *Gate) Authenticate(token string) (string, error) {
	return g.codec.Verify(token)
}

// AuthorizeActionneur loads the actionneur record of subject.
func (g *Gate) AuthorizeActionneur(ctx context.Context, subject string) (*model.Actionneur, error) {
	id, err := model.ParseSnowflake(subject)
	if err != nil {
		return nil, ErrForbidden
	}

	a, err := g.actionneurs.GetActionneur(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return a, nil
}

func (g *Gate) AuthorizeAdmin(a *model.Actionneur) (*model.Actionneur, error) {
	if a == nil || !a.IsAdmin {
		return nil, ErrForbidden
	}
	return a, nil
}
