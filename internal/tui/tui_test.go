package tui

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/mock"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/models"
)

type fakeCopier struct {
	mu     sync.Mutex
	copied []string
	err    error
}

func (f *fakeCopier) Copy(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copied = append(f.copied, text)
	return f.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func testKey() *crypto.MasterKey {
	return crypto.NewMasterKey(bytes.Repeat([]byte{0x42}, crypto.MasterKeySize))
}

func testSites() []models.Site {
	return []models.Site{
		{ID: "1", UserName: "u", SiteName: "ebay.com", Counter: 1, Type: models.LongPassword},
		{ID: "2", UserName: "u", SiteName: "github.com", Login: "octo", Counter: 2, Type: models.PIN},
	}
}

type testEnv struct {
	generator *mock.MockGeneratorService
	sites     *mock.MockSiteService
	copier    *fakeCopier
	deps      deps
}

func newTestEnv(t *testing.T) testEnv {
	ctrl := gomock.NewController(t)
	env := testEnv{
		generator: mock.NewMockGeneratorService(ctrl),
		sites:     mock.NewMockSiteService(ctrl),
		copier:    &fakeCopier{},
	}
	env.deps = deps{
		generator: env.generator,
		sites:     env.sites,
		copier:    env.copier,
		userName:  "u",
		buildInfo: models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
	}
	return env
}

// loadedSites returns a sites page with rows already rendered.
func loadedSites(t *testing.T, env testEnv) *SitesModel {
	t.Helper()
	m := NewSitesModel(context.Background(), env.deps, "u", testKey())

	rows := make([]siteRow, 0)
	for _, s := range testSites() {
		rows = append(rows, siteRow{site: s, password: "pw-" + s.SiteName})
	}
	m.Update(sitesLoadedMsg{rows: rows})
	return m
}

// ── Unlock ───────────────────────────────────────────────────────────────────

func TestUnlockModel_PrefillsUserName(t *testing.T) {
	env := newTestEnv(t)
	m := NewUnlockModel(context.Background(), env.generator, "Robert Lee Mitchell")

	assert.Equal(t, "Robert Lee Mitchell", m.inputs[0].Value())
	assert.Equal(t, 1, m.focus)
}

func TestUnlockModel_RequiresPassword(t *testing.T) {
	env := newTestEnv(t)
	m := NewUnlockModel(context.Background(), env.generator, "u")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Master password is required", m.errMsg)
}

func TestUnlockModel_SubmitDerivesKey(t *testing.T) {
	env := newTestEnv(t)
	m := NewUnlockModel(context.Background(), env.generator, "u")
	typeText(m, "banana")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Empty(t, m.inputs[1].Value(), "master password must not stay in the input")
	assert.Contains(t, m.View(), "Deriving master key")

	key := testKey()
	env.generator.EXPECT().DeriveMasterKey(gomock.Any(), "u", "banana").Return(key, nil)

	msg := m.cmdUnlock("u", "banana")()
	result, ok := msg.(UnlockResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Same(t, key, result.Key)
}

func TestUnlockModel_EscAbortsDerivation(t *testing.T) {
	env := newTestEnv(t)
	m := NewUnlockModel(context.Background(), env.generator, "u")

	env.generator.EXPECT().DeriveMasterKey(gomock.Any(), "u", "banana").
		DoAndReturn(func(ctx context.Context, _, _ string) (*crypto.MasterKey, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	m.submitting = true
	cmd := m.cmdUnlock("u", "banana")

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	select {
	case msg := <-done:
		m.Update(msg)
		assert.False(t, m.submitting)
		assert.Equal(t, "Cancelled", m.errMsg)
	case <-time.After(time.Second):
		t.Fatal("derivation was not aborted")
	}
}

func TestUnlockModel_ErrorIsShown(t *testing.T) {
	env := newTestEnv(t)
	m := NewUnlockModel(context.Background(), env.generator, "u")
	m.submitting = true

	m.Update(UnlockResult{Err: errors.New("scrypt exploded")})

	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "scrypt exploded")
}

// ── Root ─────────────────────────────────────────────────────────────────────

func TestRootModel_UnlockOpensSites(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.deps)

	key := testKey()
	updated, cmd := root.Update(UnlockResult{UserName: "u", Key: key})
	r := updated.(RootModel)

	require.True(t, r.isSitesPage())
	require.NotNil(t, cmd)

	env.sites.EXPECT().ListSites(gomock.Any(), "u").Return(testSites(), nil)
	env.generator.EXPECT().GeneratePassword(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *crypto.MasterKey, s models.Site) (string, error) {
			return "pw-" + s.SiteName, nil
		}).Times(2)

	msg := cmd()
	loaded, ok := msg.(sitesLoadedMsg)
	require.True(t, ok)
	require.Len(t, loaded.rows, 2)
	assert.Equal(t, "pw-github.com", loaded.rows[1].password)

	r.wipe()
	assert.Equal(t, 0, key.Len())
}

func TestRootModel_FailedUnlockStaysOnUnlock(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.deps)

	updated, _ := root.Update(UnlockResult{Err: context.Canceled})
	r := updated.(RootModel)

	assert.False(t, r.isSitesPage())
	assert.Nil(t, r.key)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.deps)

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_AboutWindow(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.deps)
	updated, _ := root.Update(UnlockResult{UserName: "u", Key: testKey()})

	updated, _ = updated.Update(runes("i"))
	assert.Contains(t, updated.View(), "Build version: 1.2.3")

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, updated.View(), "Build version: 1.2.3")
}

// ── Sites ────────────────────────────────────────────────────────────────────

func TestSitesModel_MaskedUntilRevealed(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	assert.NotContains(t, m.View(), "pw-ebay.com")
	assert.Contains(t, m.View(), maskedSecret)

	m.Update(runes("v"))
	assert.Contains(t, m.View(), "pw-ebay.com")

	m.Update(runes("v"))
	assert.NotContains(t, m.View(), "pw-ebay.com")
}

func TestSitesModel_Navigation(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m.Update(runes("k"))
	m.Update(runes("k"))
	assert.Equal(t, 0, m.idx)
}

func TestSitesModel_CopySelected(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)
	m.Update(runes("j"))

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	m.Update(msg)

	assert.Equal(t, []string{"pw-github.com"}, env.copier.copied)
	assert.Contains(t, m.status, "github.com")
}

func TestSitesModel_CopyError(t *testing.T) {
	env := newTestEnv(t)
	env.copier.err = errors.New("no display")
	m := loadedSites(t, env)

	_, cmd := m.Update(runes("c"))
	m.Update(cmd())

	assert.Equal(t, "no display", m.errMsg)
}

func TestSitesModel_BumpCounterRerenders(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	bumped := testSites()[0]
	bumped.Counter = 2

	env.sites.EXPECT().BumpCounter(gomock.Any(), "1", 1).Return(bumped, nil)
	env.generator.EXPECT().GeneratePassword(gomock.Any(), gomock.Any(), bumped).Return("pw-2", nil)

	_, cmd := m.Update(runes("+"))
	require.NotNil(t, cmd)

	_, renderCmd := m.Update(cmd())
	assert.Equal(t, uint32(2), m.rows[0].site.Counter)
	assert.Empty(t, m.rows[0].password)
	require.NotNil(t, renderCmd)

	m.Update(m.cmdRender(bumped)())
	assert.Equal(t, "pw-2", m.rows[0].password)
}

func TestSitesModel_DecrementCounter(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)
	m.Update(runes("j"))

	env.sites.EXPECT().BumpCounter(gomock.Any(), "2", -1).Return(testSites()[1], nil)

	_, cmd := m.Update(runes("-"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(siteChangedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)
}

func TestSitesModel_CycleType(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	cycled := testSites()[0]
	cycled.Type = models.MediumPassword
	env.sites.EXPECT().CycleType(gomock.Any(), "1").Return(cycled, nil)

	_, cmd := m.Update(runes("t"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, models.MediumPassword, m.rows[0].site.Type)
	assert.Contains(t, m.status, "medium")
}

func TestSitesModel_DeleteAsksForConfirmation(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	_, cmd := m.Update(runes("d"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), `Delete "ebay.com"?`)

	m.Update(runes("n"))
	assert.Nil(t, m.confirm)

	m.Update(runes("d"))
	env.sites.EXPECT().DeleteSite(gomock.Any(), "1").Return(nil)
	env.sites.EXPECT().ListSites(gomock.Any(), "u").Return(testSites()[1:], nil)
	env.generator.EXPECT().GeneratePassword(gomock.Any(), gomock.Any(), gomock.Any()).Return("pw", nil)

	_, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)

	deleted, ok := cmd().(siteDeletedMsg)
	require.True(t, ok)
	require.NoError(t, deleted.err)

	m.Update(deleted)
	assert.True(t, m.loading)
	m.Update(m.cmdLoad()())
	assert.Len(t, m.rows, 1)
}

func TestSitesModel_DeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	m.Update(siteDeletedMsg{name: "ebay.com", err: service.ErrSiteNotFound})
	assert.Equal(t, "Site no longer exists", m.errMsg)
}

func TestSitesModel_RenderErrorBlocksCopy(t *testing.T) {
	env := newTestEnv(t)
	m := NewSitesModel(context.Background(), env.deps, "u", testKey())
	m.Update(sitesLoadedMsg{rows: []siteRow{{site: testSites()[0], err: crypto.ErrConfiguration}}})

	_, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
	assert.Empty(t, env.copier.copied)
}

func TestSitesModel_EmptyList(t *testing.T) {
	env := newTestEnv(t)
	m := NewSitesModel(context.Background(), env.deps, "u", testKey())
	m.Update(sitesLoadedMsg{})

	assert.Contains(t, m.View(), "No sites yet")

	_, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd)
}

func TestSitesModel_NewAndQuit(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	_, cmd := m.Update(runes("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageNewSite}, cmd())

	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSitesModel_FooterShowsBuildInfo(t *testing.T) {
	env := newTestEnv(t)
	m := loadedSites(t, env)

	assert.Contains(t, m.View(), "mpw 1.2.3 (abc123)")
}

// ── New site form ────────────────────────────────────────────────────────────

func TestSiteFormModel_RequiresSiteName(t *testing.T) {
	env := newTestEnv(t)
	m := NewSiteFormModel(context.Background(), env.sites, "u")
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Site name is required", m.errMsg)
}

func TestSiteFormModel_Submit(t *testing.T) {
	env := newTestEnv(t)
	m := NewSiteFormModel(context.Background(), env.sites, "u")
	m.Init()

	typeText(m, "ebay.com")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "robert")

	saved := models.Site{ID: "1", UserName: "u", SiteName: "ebay.com", Login: "robert", Counter: 1, Type: models.LongPassword}
	env.sites.EXPECT().AddSite(gomock.Any(), models.Site{UserName: "u", SiteName: "ebay.com", Login: "robert"}).Return(saved, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	added := cmd()
	_, cmd = m.Update(added)
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageSites, nav.Page)
	assert.Equal(t, siteAddedMsg{site: saved}, nav.Payload)
}

func TestSiteFormModel_DuplicateStaysOnForm(t *testing.T) {
	env := newTestEnv(t)
	m := NewSiteFormModel(context.Background(), env.sites, "u")
	m.Init()
	m.submitting = true

	_, cmd := m.Update(siteAddedMsg{err: service.ErrSiteExists})
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "A site with this name already exists", m.errMsg)
}

func TestSiteFormModel_ShiftTabMovesBack(t *testing.T) {
	env := newTestEnv(t)
	m := NewSiteFormModel(context.Background(), env.sites, "u")
	m.Init()
	m.inputs = append(m.inputs, textinput.New())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.focus)
	assert.True(t, m.inputs[2].Focused())
	assert.False(t, m.inputs[0].Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, m.focus)
}

func TestSiteFormModel_InitResets(t *testing.T) {
	env := newTestEnv(t)
	m := NewSiteFormModel(context.Background(), env.sites, "u")
	m.Init()
	typeText(m, "leftover")
	m.errMsg = "old"

	m.Init()
	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, m.errMsg)
}
