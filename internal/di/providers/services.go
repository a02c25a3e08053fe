package providers

import (
	"github.com/samber/do/v2"

	"github.com/foreskyapp/foresky-cli/internal/draft"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
	"github.com/foreskyapp/foresky-cli/internal/logger"
	"github.com/foreskyapp/foresky-cli/internal/notestore"
	"github.com/foreskyapp/foresky-cli/internal/registry"
	"github.com/foreskyapp/foresky-cli/internal/service"
	"github.com/foreskyapp/foresky-cli/internal/session"
	"github.com/foreskyapp/foresky-cli/internal/validation"
)

// ProvideTagRegistry provides the in-memory tag cache.
func ProvideTagRegistry(i do.Injector) (*registry.Registry, error) {
	return registry.New(), nil
}

// ProvideNoteStore provides the in-memory note cache.
func ProvideNoteStore(i do.Injector) (*notestore.Store, error) {
	return notestore.New(), nil
}

// ProvideDraftEditor provides the draft editor.
func ProvideDraftEditor(i do.Injector) (*draft.Editor, error) {
	return draft.NewEditor(), nil
}

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	sess := do.MustInvoke[*session.Manager](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(gw, sess, v, log.Logger), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	reg := do.MustInvoke[*registry.Registry](i)
	notes := do.MustInvoke[*notestore.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(gw, reg, notes, log.Logger), nil
}

// ProvideNoteService provides the note service.
func ProvideNoteService(i do.Injector) (*service.NoteService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	notes := do.MustInvoke[*notestore.Store](i)
	editor := do.MustInvoke[*draft.Editor](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewNoteService(gw, notes, editor, log.Logger), nil
}

// ProvideStatsService provides the stats service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStatsService(gw, log.Logger), nil
}
