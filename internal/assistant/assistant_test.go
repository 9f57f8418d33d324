package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forfeolab/forfeo-be/internal/models/dto"
)

type stubGenerator struct {
	replies    []string
	errs       []error
	prompts    []string
	callsSoFar int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	i := s.callsSoFar
	s.callsSoFar++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "ok", nil
}

func TestPromptCarriesSuppliedContext(t *testing.T) {
	earnings := 120.0
	prompt := BuildPrompt("Combien j'ai gagné ?", &dto.ChatContext{
		Name:     "Hôtel Le Prestige",
		Missions: []string{"Audit accueil", "Sondage petit-déjeuner"},
		Earnings: &earnings,
	})

	assert.Contains(t, prompt, "Hôtel Le Prestige")
	assert.Contains(t, prompt, "Audit accueil, Sondage petit-déjeuner")
	assert.Contains(t, prompt, "120.00")
	assert.Contains(t, prompt, "Combien j'ai gagné ?")
	assert.Contains(t, prompt, "Règle d'or")
}

func TestPromptWithoutContext(t *testing.T) {
	prompt := BuildPrompt("Bonjour", nil)
	assert.Contains(t, prompt, "aucun contexte fourni")
	assert.Contains(t, prompt, "Bonjour")
}

func TestReplyForwardsPromptAndReturnsReply(t *testing.T) {
	gen := &stubGenerator{replies: []string{"Vous avez gagné 120,00 € ce mois-ci."}}
	builder := NewBuilder(gen, time.Second)

	earnings := 120.0
	reply, err := builder.Reply(context.Background(), "Combien j'ai gagné ?", &dto.ChatContext{Earnings: &earnings})
	require.NoError(t, err)
	assert.Equal(t, "Vous avez gagné 120,00 € ce mois-ci.", reply)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "120.00")
}

func TestReplyRetriesTransientFailures(t *testing.T) {
	gen := &stubGenerator{
		errs:    []error{errors.New("boom"), errors.New("boom again"), nil},
		replies: []string{"", "", "réponse"},
	}
	builder := NewBuilder(gen, 5*time.Second)

	reply, err := builder.Reply(context.Background(), "Bonjour", nil)
	require.NoError(t, err)
	assert.Equal(t, "réponse", reply)
	assert.Equal(t, 3, gen.callsSoFar)
}

func TestReplyFallsBackWhenGenerationUnavailable(t *testing.T) {
	gen := &stubGenerator{errs: []error{errors.New("a"), errors.New("b"), errors.New("c")}}
	builder := NewBuilder(gen, 5*time.Second)

	reply, err := builder.Reply(context.Background(), "Bonjour", nil)
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.Equal(t, FallbackReply, reply)
}

func TestReplyFallsBackOnEmptyReply(t *testing.T) {
	gen := &stubGenerator{replies: []string{"   "}}
	builder := NewBuilder(gen, time.Second)

	reply, err := builder.Reply(context.Background(), "Bonjour", nil)
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.Equal(t, FallbackReply, reply)
}

func TestUnavailableGeneratorAlwaysFails(t *testing.T) {
	builder := NewBuilder(Unavailable{}, time.Second)

	reply, err := builder.Reply(context.Background(), "Bonjour", nil)
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.Equal(t, FallbackReply, reply)
}
