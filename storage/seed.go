package storage

import (
	"github.com/google/uuid"

	"github.com/LuminLynx/ProductCareHub/models"
)

func strptr(s string) *string { return &s }

// seedBrands loads the ten stock manufacturer records. Runs once from New,
// before the store is shared, so no locking.
func (s *Store) seedBrands() {
	brands := []models.NewBrand{
		{
			Name:         "Apple",
			SupportEmail: "support@apple.com",
			SupportPhone: strptr("+1-800-692-7753"),
			Website:      strptr("https://www.apple.com/support/"),
			Category:     "Informática",
		},
		{
			Name:         "Samsung",
			SupportEmail: "support@samsung.com",
			SupportPhone: strptr("+351-808-207-267"),
			Website:      strptr("https://www.samsung.com/pt/support/"),
			Category:     "Eletrodomésticos",
		},
		{
			Name:         "LG",
			SupportEmail: "apoio.cliente@lge.com",
			SupportPhone: strptr("+351-707-505-454"),
			Website:      strptr("https://www.lg.com/pt/support"),
			Category:     "Eletrodomésticos",
		},
		{
			Name:         "Sony",
			SupportEmail: "info@sony.pt",
			SupportPhone: strptr("+351-707-780-785"),
			Website:      strptr("https://www.sony.pt/support"),
			Category:     "Televisão e Áudio",
		},
		{
			Name:         "Bosch",
			SupportEmail: "bosch-pt@bshg.com",
			SupportPhone: strptr("+351-214-250-730"),
			Website:      strptr("https://www.bosch-home.pt/servico"),
			Category:     "Eletrodomésticos",
		},
		{
			Name:         "Siemens",
			SupportEmail: "siemens-pt@bshg.com",
			SupportPhone: strptr("+351-214-250-700"),
			Website:      strptr("https://www.siemens-home.bsh-group.com/pt/"),
			Category:     "Eletrodomésticos",
		},
		{
			Name:         "Microsoft",
			SupportEmail: "support@microsoft.com",
			SupportPhone: strptr("+351-21-366-5100"),
			Website:      strptr("https://support.microsoft.com/"),
			Category:     "Informática",
		},
		{
			Name:         "Dell",
			SupportEmail: "tech_support@dell.com",
			SupportPhone: strptr("+351-707-788-788"),
			Website:      strptr("https://www.dell.com/support/"),
			Category:     "Informática",
		},
		{
			Name:         "HP",
			SupportEmail: "support@hp.com",
			SupportPhone: strptr("+351-707-222-000"),
			Website:      strptr("https://support.hp.com/"),
			Category:     "Informática",
		},
		{
			Name:         "Xiaomi",
			SupportEmail: "service.pt@xiaomi.com",
			SupportPhone: strptr("+351-308-810-456"),
			Website:      strptr("https://www.mi.com/pt/service/"),
			Category:     "Telefones",
		},
	}

	for _, nb := range brands {
		id := uuid.NewString()
		s.brands[id] = models.Brand{
			ID:           id,
			Name:         nb.Name,
			SupportEmail: nb.SupportEmail,
			SupportPhone: nb.SupportPhone,
			Website:      nb.Website,
			Category:     nb.Category,
		}
	}
}

// seedProviders loads a starter set for the repair-company directory.
func (s *Store) seedProviders() {
	providers := []models.NewServiceProvider{
		{
			Name:        "TecnoReparo Lisboa",
			District:    "Lisboa",
			Phone:       "+351-213-456-789",
			Email:       "geral@tecnoreparo.pt",
			Website:     strptr("https://www.tecnoreparo.pt"),
			Specialties: []string{"Informática", "Telefones"},
		},
		{
			Name:        "Eletro Serviço Porto",
			District:    "Porto",
			Phone:       "+351-225-123-456",
			Email:       "apoio@eletroservico.pt",
			Specialties: []string{"Eletrodomésticos"},
		},
		{
			Name:        "FixIt Braga",
			District:    "Braga",
			Phone:       "+351-253-987-654",
			Email:       "contacto@fixitbraga.pt",
			Website:     strptr("https://www.fixitbraga.pt"),
			Specialties: []string{"Televisão e Áudio", "Informática"},
		},
		{
			Name:        "Assistência Total Faro",
			District:    "Faro",
			Phone:       "+351-289-321-000",
			Email:       "info@assistenciatotal.pt",
			Specialties: []string{"Eletrodomésticos", "Telefones"},
		},
	}

	for _, np := range providers {
		id := uuid.NewString()
		specialties := np.Specialties
		if specialties == nil {
			specialties = []string{}
		}
		s.providers[id] = models.ServiceProvider{
			ID:          id,
			Name:        np.Name,
			District:    np.District,
			Phone:       np.Phone,
			Email:       np.Email,
			Website:     np.Website,
			Specialties: specialties,
		}
	}
}
