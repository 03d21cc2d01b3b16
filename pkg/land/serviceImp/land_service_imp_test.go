package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/land/service"
)

// fakeLandRepo keeps lands in a slice, newest first like the gorm repo.
type fakeLandRepo struct {
	lands []entities.Land
	seq   int
}

func (f *fakeLandRepo) Create(l *entities.Land) error {
	f.seq++
	if l.ID == "" {
		l.ID = string(rune('a' + f.seq))
	}
	f.lands = append([]entities.Land{*l}, f.lands...)
	return nil
}

func (f *fakeLandRepo) List() ([]entities.Land, error) { return f.lands, nil }

func (f *fakeLandRepo) ListByStatus(status string) ([]entities.Land, error) {
	var out []entities.Land
	for _, l := range f.lands {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLandRepo) FindByID(id string) (*entities.Land, error) {
	for i := range f.lands {
		if f.lands[i].ID == id {
			l := f.lands[i]
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLandRepo) Update(l *entities.Land) error {
	for i := range f.lands {
		if f.lands[i].ID == l.ID {
			f.lands[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeLandRepo) Delete(id string) error {
	for i := range f.lands {
		if f.lands[i].ID == id {
			f.lands = append(f.lands[:i], f.lands[i+1:]...)
			return nil
		}
	}
	return nil
}

func str(s string) *string { return &s }

func num(v float64) *float64 { return &v }

func validInput() service.LandInput {
	return service.LandInput{
		Name:        "North Field",
		AreaM2:      1200,
		Commodities: []string{"Tomatoes"},
	}
}

func TestCreateLand(t *testing.T) {
	svc := New(&fakeLandRepo{})

	l, err := svc.Create(validInput())
	require.NoError(t, err)
	assert.Equal(t, "active", l.Status)
	assert.NotNil(t, l.Photos)
	assert.Nil(t, l.CustomCommodity)
}

func TestCreateLandValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*service.LandInput)
	}{
		{"missing name", func(in *service.LandInput) { in.Name = "" }},
		{"zero area", func(in *service.LandInput) { in.AreaM2 = 0 }},
		{"no commodities", func(in *service.LandInput) { in.Commodities = nil }},
		{"commodity outside the vocabulary", func(in *service.LandInput) { in.Commodities = []string{"Durian"} }},
		{"free text must go through Others", func(in *service.LandInput) {
			in.Commodities = []string{"Tomatoes", "Ginger"}
			in.CustomCommodity = str("Ginger")
		}},
		{"latitude without longitude", func(in *service.LandInput) { in.Latitude = num(1) }},
		{"latitude out of range", func(in *service.LandInput) { in.Latitude = num(95); in.Longitude = num(0) }},
		{"longitude out of range", func(in *service.LandInput) { in.Latitude = num(0); in.Longitude = num(200) }},
		{"others without custom label", func(in *service.LandInput) { in.Commodities = []string{"Others"} }},
		{"others declared twice", func(in *service.LandInput) {
			in.Commodities = []string{"Others", "Others"}
			in.CustomCommodity = str("Ginger")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := New(&fakeLandRepo{})
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(in)
			assert.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestCreateLandWithOthers(t *testing.T) {
	svc := New(&fakeLandRepo{})
	in := validInput()
	in.Commodities = []string{"Tomatoes", "Others"}
	in.CustomCommodity = str("Ginger")

	l, err := svc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, l.CustomCommodity)
	assert.Equal(t, "Ginger", *l.CustomCommodity)
}

func TestUpdateLandDropsStaleCustomCommodity(t *testing.T) {
	repo := &fakeLandRepo{}
	svc := New(repo)
	in := validInput()
	in.Commodities = []string{"Others"}
	in.CustomCommodity = str("Ginger")
	l, err := svc.Create(in)
	require.NoError(t, err)

	// Deselecting Others clears the companion label.
	in.Commodities = []string{"Garlic"}
	updated, err := svc.Update(l.ID, in)
	require.NoError(t, err)
	assert.Nil(t, updated.CustomCommodity)
}

func TestUpdateLandStatus(t *testing.T) {
	repo := &fakeLandRepo{}
	svc := New(repo)
	l, err := svc.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Status = "vacant"
	updated, err := svc.Update(l.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "vacant", updated.Status)

	in.Status = "bulldozed"
	_, err = svc.Update(l.ID, in)
	assert.ErrorIs(t, err, service.ErrInvalid)
}

func TestAttachPhotoCap(t *testing.T) {
	repo := &fakeLandRepo{}
	svc := New(repo)
	l, err := svc.Create(validInput())
	require.NoError(t, err)

	for i := 0; i < entities.MaxLandPhotos; i++ {
		_, err := svc.AttachPhoto(l.ID, "/static/photos/p.jpg")
		require.NoError(t, err)
	}
	_, err = svc.AttachPhoto(l.ID, "/static/photos/extra.jpg")
	assert.ErrorIs(t, err, service.ErrInvalid)

	got, err := svc.Get(l.ID)
	require.NoError(t, err)
	assert.Len(t, got.Photos, entities.MaxLandPhotos)
}

func TestGetUnknownLand(t *testing.T) {
	svc := New(&fakeLandRepo{})
	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
