package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/artem13815/career/pkg/llm"
	"github.com/artem13815/career/pkg/resume/content"
)

// Primary is the companion generation service tried before the LLM.
type Primary interface {
	GenerateResume(ctx context.Context, req ResumeRequest) (content.Document, error)
	AnalyzeJobMatch(ctx context.Context, req MatchRequest) (MatchAnalysis, error)
	GeneratePost(ctx context.Context, req PostRequest) (string, error)
	Healthy(ctx context.Context) bool
}

// Gateway never fails a generation request because a provider is down:
// each operation ends at static content. Only invalid input is an error.
type Gateway struct {
	primary Primary
	llm     llm.ChatModel
	cache   *Cache
	probe   *Probe
	log     *slog.Logger
}

type Option func(*Gateway)

// WithProbe lets the gateway skip the primary while the last probe saw it down.
func WithProbe(p *Probe) Option { return func(g *Gateway) { g.probe = p } }

func WithCache(c *Cache) Option { return func(g *Gateway) { g.cache = c } }

func WithLogger(l *slog.Logger) Option { return func(g *Gateway) { g.log = l } }

// New builds a gateway. primary and model may be nil.
func New(primary Primary, model llm.ChatModel, opts ...Option) *Gateway {
	g := &Gateway{primary: primary, llm: model, log: slog.Default()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// IsHealthy probes the primary service directly.
func (g *Gateway) IsHealthy(ctx context.Context) bool {
	if g.primary == nil {
		return false
	}
	return g.primary.Healthy(ctx)
}

func (g *Gateway) primaryUsable() bool {
	if g.primary == nil {
		return false
	}
	return g.probe == nil || g.probe.Healthy()
}

func (g *Gateway) degrade(op string, from Source, err error) {
	g.log.Warn("ai provider failed, degrading", "op", op, "provider", string(from), "err", err)
}

func (g *Gateway) GenerateResume(ctx context.Context, req ResumeRequest) (ResumeResult, error) {
	if strings.TrimSpace(req.LinkedinURL) == "" && req.Profile == nil {
		return ResumeResult{}, errors.New("linkedin url or profile is required")
	}
	if g.primaryUsable() {
		doc, err := g.primary.GenerateResume(ctx, req)
		if err == nil {
			if doc, err = checked(doc); err == nil {
				return ResumeResult{Content: doc, Source: SourceGAI}, nil
			}
		}
		g.degrade("generate_resume", SourceGAI, err)
	}
	if g.llm != nil {
		doc, err := g.llmResume(ctx, req)
		if err == nil {
			return ResumeResult{Content: doc, Source: SourceLLM}, nil
		}
		g.degrade("generate_resume", SourceLLM, err)
	}
	return ResumeResult{Content: fallbackResume(req), Source: SourceFallback}, nil
}

func (g *Gateway) AnalyzeJobMatch(ctx context.Context, req MatchRequest) (MatchAnalysis, error) {
	key := cacheKey("match", req)
	if v, ok := g.cache.get(key); ok {
		return v.(MatchAnalysis), nil
	}
	if g.primaryUsable() {
		m, err := g.primary.AnalyzeJobMatch(ctx, req)
		if err == nil {
			m.normalize()
			m.Source = SourceGAI
			return m, nil
		}
		g.degrade("analyze_job_match", SourceGAI, err)
	}
	if g.llm != nil {
		m, err := g.llmMatch(ctx, req)
		if err == nil {
			m.normalize()
			m.Source = SourceLLM
			g.cache.set(key, m)
			return m, nil
		}
		g.degrade("analyze_job_match", SourceLLM, err)
	}
	return fallbackMatch(req), nil
}

func (g *Gateway) GeneratePost(ctx context.Context, req PostRequest) (PostResult, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return PostResult{}, errors.New("topic is required")
	}
	if g.primaryUsable() {
		text, err := g.primary.GeneratePost(ctx, req)
		if err == nil && strings.TrimSpace(text) != "" {
			return PostResult{Content: strings.TrimSpace(text), Source: SourceGAI}, nil
		}
		if err == nil {
			err = errors.New("empty post")
		}
		g.degrade("generate_post", SourceGAI, err)
	}
	if g.llm != nil {
		text, err := g.llmPost(ctx, req)
		if err == nil {
			return PostResult{Content: text, Source: SourceLLM}, nil
		}
		g.degrade("generate_post", SourceLLM, err)
	}
	return PostResult{Content: fallbackPost(req), Source: SourceFallback}, nil
}

func (g *Gateway) PolishResume(ctx context.Context, doc content.Document, job JobDescriptor) (PolishResult, error) {
	if strings.TrimSpace(job.Title) == "" {
		return PolishResult{}, errors.New("job title is required")
	}
	doc.Normalize()
	key := cacheKey("polish", doc, job)
	if v, ok := g.cache.get(key); ok {
		return v.(PolishResult), nil
	}
	if g.llm != nil {
		p, err := g.llmPolish(ctx, doc, job)
		if err == nil {
			p.normalize()
			p.Source = SourceLLM
			g.cache.set(key, p)
			return p, nil
		}
		g.degrade("polish_resume", SourceLLM, err)
	}
	return fallbackPolish(doc, job), nil
}

func (g *Gateway) ImproveResume(ctx context.Context, doc content.Document) (ImproveResult, error) {
	doc.Normalize()
	if g.llm != nil {
		s, err := g.llmImprove(ctx, doc)
		if err == nil && len(s) > 0 {
			return ImproveResult{Suggestions: s, Source: SourceLLM}, nil
		}
		if err == nil {
			err = errors.New("no suggestions")
		}
		g.degrade("improve_resume", SourceLLM, err)
	}
	return ImproveResult{Suggestions: fallbackImprove(doc), Source: SourceFallback}, nil
}

func (g *Gateway) CareerAdvice(ctx context.Context, req AdviceRequest) (AdviceResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return AdviceResult{}, errors.New("message is required")
	}
	if g.llm != nil {
		text, err := g.llmAdvice(ctx, req)
		if err == nil {
			return AdviceResult{Response: text, Source: SourceLLM}, nil
		}
		g.degrade("career_advice", SourceLLM, err)
	}
	return AdviceResult{Response: fallbackAdvice, Source: SourceFallback}, nil
}

func checked(doc content.Document) (content.Document, error) {
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return content.Document{}, err
	}
	if strings.TrimSpace(doc.PersonalInfo.Name) == "" {
		return content.Document{}, errors.New("generated resume has no name")
	}
	return doc, nil
}

// decodeJSON parses a model reply, tolerating prose or code fences around the object.
func decodeJSON(raw string, out any) error {
	raw = strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(raw), out); err == nil {
		return nil
	}
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			if err := json.Unmarshal([]byte(raw[i:j+1]), out); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("model reply is not JSON")
}
