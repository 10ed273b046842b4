package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"
)

// fakeTemplateRepo süreç içi ITemplateRepository; testler veritabanı
// olmadan çözümleme kurallarını doğrular.
type fakeTemplateRepo struct {
	templates  []*models.Template
	nextID     uint
	queryCount int
}

func newFakeTemplateRepo(templates ...*models.Template) *fakeTemplateRepo {
	repo := &fakeTemplateRepo{nextID: 1}
	for _, t := range templates {
		if t.ID == 0 {
			t.ID = repo.nextID
		}
		if t.ID >= repo.nextID {
			repo.nextID = t.ID + 1
		}
		repo.templates = append(repo.templates, t)
	}
	return repo
}

func (r *fakeTemplateRepo) Create(_ context.Context, template *models.Template) error {
	for _, t := range r.templates {
		if t.Slug == template.Slug || t.PublicID == template.PublicID {
			return repositories.ErrDuplicate
		}
	}
	template.ID = r.nextID
	r.nextID++
	r.templates = append(r.templates, template)
	return nil
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id uint) (*models.Template, error) {
	r.queryCount++
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeTemplateRepo) FindByPublicID(_ context.Context, publicID uuid.UUID) (*models.Template, error) {
	r.queryCount++
	for _, t := range r.templates {
		if t.PublicID == publicID {
			return t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeTemplateRepo) FindBySlug(_ context.Context, slug string) (*models.Template, error) {
	r.queryCount++
	for _, t := range r.templates {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeTemplateRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, t := range r.templates {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTemplateRepo) FindAllPaginated(_ context.Context, params queryparams.ListParams) ([]models.Template, int64, error) {
	result := make([]models.Template, 0, len(r.templates))
	for _, t := range r.templates {
		result = append(result, *t)
	}
	return result, int64(len(result)), nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, id uint, data map[string]interface{}, _ uint) error {
	for _, t := range r.templates {
		if t.ID == id {
			if slug, ok := data["slug"].(string); ok {
				t.Slug = slug
			}
			if active, ok := data["is_active"].(bool); ok {
				t.IsActive = active
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeTemplateRepo) Delete(_ context.Context, template *models.Template, _ uint) error {
	for i, t := range r.templates {
		if t.ID == template.ID {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

var _ repositories.ITemplateRepository = (*fakeTemplateRepo)(nil)

func activeTemplate(slug string) *models.Template {
	return &models.Template{
		PublicID:   uuid.New(),
		Slug:       slug,
		TypeKey:    "elegant",
		OwnerEmail: "sahip@example.com",
		IsActive:   true,
	}
}

func TestResolveTemplate_BySlug(t *testing.T) {
	template := activeTemplate("ayse-mehmet")
	service := NewTemplateServiceWith(newFakeTemplateRepo(template))

	resolved, err := service.ResolveTemplate(context.Background(), "ayse-mehmet")
	require.NoError(t, err)
	assert.Equal(t, template.PublicID, resolved.PublicID)
}

func TestResolveTemplate_ByPublicID(t *testing.T) {
	template := activeTemplate("ayse-mehmet")
	service := NewTemplateServiceWith(newFakeTemplateRepo(template))

	resolved, err := service.ResolveTemplate(context.Background(), template.PublicID.String())
	require.NoError(t, err)
	assert.Equal(t, "ayse-mehmet", resolved.Slug)
}

func TestResolveTemplate_LegacyPrefixRejectedWithoutDB(t *testing.T) {
	repo := newFakeTemplateRepo(activeTemplate("herhangi"))
	service := NewTemplateServiceWith(repo)

	for _, identifier := range []string{"t-eski-davetiye", "t/eski-davetiye", "t"} {
		_, err := service.ResolveTemplate(context.Background(), identifier)
		assert.ErrorIs(t, err, ErrTemplateLegacyPath, "tanımlayıcı: %s", identifier)
	}
	assert.Zero(t, repo.queryCount, "eski adresler için veritabanına gidilmemeli")
}

func TestResolveTemplate_StoredLegacySlugStillUnreachable(t *testing.T) {
	// Kayıt bir şekilde "t-" önekli slug ile var olsa bile public yoldan
	// erişilemez.
	legacy := activeTemplate("t-gizli-kayit")
	service := NewTemplateServiceWith(newFakeTemplateRepo(legacy))

	_, err := service.ResolveTemplate(context.Background(), "t-gizli-kayit")
	assert.ErrorIs(t, err, ErrTemplateLegacyPath)
}

func TestResolveTemplate_InactiveLooksNotFound(t *testing.T) {
	template := activeTemplate("pasif-davetiye")
	template.IsActive = false
	service := NewTemplateServiceWith(newFakeTemplateRepo(template))

	_, err := service.ResolveTemplate(context.Background(), "pasif-davetiye")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = service.ResolveTemplate(context.Background(), template.PublicID.String())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestResolveTemplate_InvalidIdentifiers(t *testing.T) {
	service := NewTemplateServiceWith(newFakeTemplateRepo())

	for _, identifier := range []string{"", "   ", "Büyük-Harf", "bosluklu slug", "alt_cizgi"} {
		_, err := service.ResolveTemplate(context.Background(), identifier)
		assert.ErrorIs(t, err, ErrTemplateInvalidIdentifier, "tanımlayıcı: %q", identifier)
	}
}

func TestResolveTemplate_UnknownSlugNotFound(t *testing.T) {
	service := NewTemplateServiceWith(newFakeTemplateRepo())

	_, err := service.ResolveTemplate(context.Background(), "hic-olmayan")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = service.ResolveTemplate(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCreateTemplate_Validation(t *testing.T) {
	service := NewTemplateServiceWith(newFakeTemplateRepo())
	ctx := context.Background()

	_, err := service.CreateTemplate(ctx, 1, CreateTemplateInput{
		Slug: "t-yeni", TypeKey: "elegant", OwnerEmail: "a@b.co",
	})
	assert.ErrorIs(t, err, ErrTemplateInvalidSlug, "eski önekli slug yaratılamamalı")

	_, err = service.CreateTemplate(ctx, 1, CreateTemplateInput{
		Slug: "gecerli-slug", TypeKey: "bilinmeyen", OwnerEmail: "a@b.co",
	})
	assert.ErrorIs(t, err, ErrTemplateUnknownType)

	_, err = service.CreateTemplate(ctx, 1, CreateTemplateInput{
		Slug: "gecerli-slug", TypeKey: "elegant",
	})
	assert.ErrorIs(t, err, ErrTemplateInvalidInput, "sahip e-postası zorunlu")
}

func TestCreateTemplate_SlugUniqueness(t *testing.T) {
	repo := newFakeTemplateRepo(activeTemplate("dolu-slug"))
	service := NewTemplateServiceWith(repo)

	_, err := service.CreateTemplate(context.Background(), 1, CreateTemplateInput{
		Slug: "dolu-slug", TypeKey: "elegant", OwnerEmail: "a@b.co",
	})
	assert.ErrorIs(t, err, ErrTemplateSlugTaken)
}

func TestCreateTemplate_Success(t *testing.T) {
	repo := newFakeTemplateRepo()
	service := NewTemplateServiceWith(repo)

	created, err := service.CreateTemplate(context.Background(), 1, CreateTemplateInput{
		Slug: "yeni-davetiye", TypeKey: "romantic", OwnerName: "Ayşe", OwnerEmail: "ayse@example.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.PublicID)
	assert.True(t, created.IsActive)

	resolved, err := service.ResolveTemplate(context.Background(), "yeni-davetiye")
	require.NoError(t, err)
	assert.Equal(t, created.PublicID, resolved.PublicID)
}

func TestCloneTemplate(t *testing.T) {
	source := activeTemplate("kaynak-davetiye")
	source.Config = []byte(`{"couple":{"brideName":"Ayşe"}}`)
	repo := newFakeTemplateRepo(source)
	service := NewTemplateServiceWith(repo)

	clone, err := service.CloneTemplate(context.Background(), 1, source.ID, "kopya-davetiye")
	require.NoError(t, err)
	assert.Equal(t, "kopya-davetiye", clone.Slug)
	assert.NotEqual(t, source.PublicID, clone.PublicID, "kopya yeni bir public ID almalı")
	assert.JSONEq(t, string(source.Config), string(clone.Config))
}

func TestCloneTemplate_LongSourceSlugStaysValid(t *testing.T) {
	// Kırpma noktası tam bir tirenin üzerine denk gelecek uzunlukta kaynak.
	longSlug := strings.Repeat("a", 70) + "-" + strings.Repeat("b", 8)
	source := activeTemplate(longSlug)
	repo := newFakeTemplateRepo(source)
	service := NewTemplateServiceWith(repo)

	clone, err := service.CloneTemplate(context.Background(), 1, source.ID, "")
	require.NoError(t, err)
	assert.True(t, models.IsValidSlug(clone.Slug), "türetilen slug geçerli kalmalı: %q", clone.Slug)
	assert.LessOrEqual(t, len(clone.Slug), 80)
	assert.NotEqual(t, source.Slug, clone.Slug)
}
