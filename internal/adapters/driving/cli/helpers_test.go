package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	configfile "github.com/aikawa-legal/saikengen/internal/adapters/driven/config/file"
	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driving"
)

// --- Fake services ---

type fakeRenderService struct {
	req driving.RenderRequest
	doc *domain.RenderedDocument
	err error
}

func (f *fakeRenderService) Render(_ context.Context, req driving.RenderRequest) (*domain.RenderedDocument, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type fakeTemplateService struct {
	registeredCourt     string
	registeredProcedure string
	registeredPath      string
	registeredDesc      string
	deletedCourt        string
	deletedProcedure    string
	infos               []driven.TemplateInfo
	info                *driven.TemplateInfo
	err                 error
}

func (f *fakeTemplateService) Register(courtName, procedureType, sourcePath, description string) error {
	f.registeredCourt = courtName
	f.registeredProcedure = procedureType
	f.registeredPath = sourcePath
	f.registeredDesc = description
	return f.err
}

func (f *fakeTemplateService) List() ([]driven.TemplateInfo, error) {
	return f.infos, f.err
}

func (f *fakeTemplateService) Info(courtName, procedureType string) (*driven.TemplateInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeTemplateService) Delete(courtName, procedureType string) error {
	f.deletedCourt = courtName
	f.deletedProcedure = procedureType
	return f.err
}

type fakeCreditorService struct {
	importedData []byte
	count        int
	records      []domain.CreditorRecord
	debtors      []string
	deleted      string
	err          error
}

func (f *fakeCreditorService) ImportJSON(_ context.Context, data []byte) (int, error) {
	f.importedData = data
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

func (f *fakeCreditorService) ListByDebtor(_ context.Context, _ string) ([]domain.CreditorRecord, error) {
	return f.records, f.err
}

func (f *fakeCreditorService) ListDebtors(_ context.Context) ([]string, error) {
	return f.debtors, f.err
}

func (f *fakeCreditorService) Delete(_ context.Context, debtorName string) error {
	f.deleted = debtorName
	return f.err
}

// setupTestServices injects fresh fakes and returns them with a cleanup
// that restores the previous services and resets flag state.
func setupTestServices(t *testing.T) (*fakeRenderService, *fakeTemplateService, *fakeCreditorService, driven.ConfigStore) {
	t.Helper()

	render := &fakeRenderService{}
	template := &fakeTemplateService{}
	creditor := &fakeCreditorService{}
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	prevRender, prevTemplate, prevCreditor, prevConfig := renderService, templateService, creditorService, configStore
	SetServices(render, template, creditor, config)

	t.Cleanup(func() {
		SetServices(prevRender, prevTemplate, prevCreditor, prevConfig)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	return render, template, creditor, config
}

// resetFlags clears package-level flag values between executions.
func resetFlags() {
	flagVerbose = false
	flagConfigDir = ""
	renderCourt = ""
	renderProcedure = ""
	renderDebtor = ""
	renderCaseNumber = ""
	renderOutput = ""
	templateCourt = ""
	templateProcedure = ""
	templateDescription = ""
}
