package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/forfeolab/forfeo-be/internal/models/dto"
)

// ErrGenerationUnavailable indicates the text-generation capability errored
// or timed out; callers present FallbackReply instead of the raw error.
var ErrGenerationUnavailable = errors.New("generation unavailable")

// FallbackReply is the user-presentable message returned when generation fails.
const FallbackReply = "L'assistant Forfeo est momentanément indisponible. Merci de réessayer dans un instant."

// preamble is the fixed platform-knowledge block prepended to every prompt.
// The golden rule keeps replies on-platform and personalized from the
// supplied context only.
const preamble = `Tu es l'assistant de Forfeo Lab, la plateforme qui connecte
les entreprises, les ambassadeurs clients mystères et les employés.
Les entreprises commandent des missions d'audit et de sondage, suivent leur
score de satisfaction (0 à 10) et leur forfait (Free ou Forfait Pro).
Les ambassadeurs réalisent les missions et perçoivent des gains.
Règle d'or : réponds uniquement sur la plateforme Forfeo Lab et personnalise
ta réponse avec le contexte utilisateur fourni ci-dessous. Si une question
sort de ce cadre, ramène poliment la conversation à la plateforme.`

// Generator is the opaque text-generation capability: prompt in, reply out.
// Implementations may be slow or fail; the builder bounds both.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Builder assembles a bounded knowledge prompt and forwards it to a
// Generator. It holds no persistent state and is safe to retry.
type Builder struct {
	gen     Generator
	timeout time.Duration
}

// NewBuilder constructs a builder over the given generator. timeout bounds
// the whole generation call including retries.
func NewBuilder(gen Generator, timeout time.Duration) *Builder {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Builder{gen: gen, timeout: timeout}
}

// Reply composes the prompt from the platform preamble, the caller-supplied
// context bundle, and the user's message, then calls the generator with a
// bounded retry. On failure it returns FallbackReply together with
// ErrGenerationUnavailable.
func (b *Builder) Reply(ctx context.Context, message string, bundle *dto.ChatContext) (string, error) {
	prompt := BuildPrompt(message, bundle)

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var reply string
	backoff := retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out, err := b.gen.Generate(ctx, prompt)
		if err != nil {
			return retry.RetryableError(err)
		}
		reply = out
		return nil
	})
	if err != nil {
		return FallbackReply, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackReply, ErrGenerationUnavailable
	}
	return reply, nil
}

// BuildPrompt renders the full instruction prompt sent to the generator.
func BuildPrompt(message string, bundle *dto.ChatContext) string {
	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n\nContexte utilisateur :\n")
	if bundle == nil {
		sb.WriteString("(aucun contexte fourni)\n")
	} else {
		if bundle.Name != "" {
			fmt.Fprintf(&sb, "- Nom : %s\n", bundle.Name)
		}
		if len(bundle.Missions) > 0 {
			fmt.Fprintf(&sb, "- Missions en cours : %s\n", strings.Join(bundle.Missions, ", "))
		}
		if bundle.Earnings != nil {
			fmt.Fprintf(&sb, "- Gains : %.2f €\n", *bundle.Earnings)
		}
	}
	fmt.Fprintf(&sb, "\nQuestion : %s\n", strings.TrimSpace(message))
	return sb.String()
}
