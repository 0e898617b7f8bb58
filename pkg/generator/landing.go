package generator

import (
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

var (
	landingStatus      = []string{"ATIVO", "INATIVO", "PENDENTE"}
	landingComunicacao = []string{"email", "telefone", "sms"}
	cloudXCategorias   = []string{"PREMIUM", "STANDARD", "BASIC"}
	cloudXCanais       = []string{"ONLINE", "LOJA_FISICA", "TELEFONE", "APP"}
)

// landingSAPFactory builds raw SAP customers: flat identity fields plus
// nested endereco, empresa and preferencias groups, dates as text.
type landingSAPFactory struct{ Deps }

func (f *landingSAPFactory) Zone() zone.Zone { return zone.LandingSAP }

func (f *landingSAPFactory) Build() (*models.Record, error) {
	p, r := f.Provider, f.Rand
	now := f.Clock.Now()

	b := newRecordBuilder(12)
	b.text("id", p.UUID)
	b.text("nome", p.Name)
	b.text("email", p.Email)
	b.text("telefone", p.PhoneNumber)
	b.group("endereco", 5, func(g *recordBuilder) {
		g.text("rua", p.StreetAddress)
		g.text("cidade", p.City)
		g.text("estado", p.State)
		g.text("cep", p.Postcode)
		g.set("pais", "Brasil")
	})
	b.dateText("data_nascimento", dateOfBirth(p, now))
	b.dateText("data_cadastro", lookback(p, now, 2))
	b.set("salario", round2(r.Float64Range(1000, 15000)))
	b.set("status", r.RandomString(landingStatus))
	b.group("empresa", 3, func(g *recordBuilder) {
		g.text("nome", p.Company)
		g.text("cnpj", p.CNPJ)
		g.set("setor", r.RandomString(setoresBase))
	})
	b.group("preferencias", 3, func(g *recordBuilder) {
		g.set("comunicacao", r.RandomString(landingComunicacao))
		g.set("idioma", "pt-BR")
		g.set("newsletter", r.Bool())
	})
	return b.build(string(zone.LandingSAP))
}

// landingCloudXFactory builds raw Cloud X customers: a single flat level
// with typed dates and independent credit and purchase figures.
type landingCloudXFactory struct{ Deps }

func (f *landingCloudXFactory) Zone() zone.Zone { return zone.LandingCloudX }

func (f *landingCloudXFactory) Build() (*models.Record, error) {
	p, r := f.Provider, f.Rand
	now := f.Clock.Now()

	b := newRecordBuilder(19)
	b.text("id", p.UUID)
	b.text("nome", p.Name)
	b.text("email", p.Email)
	b.text("telefone", p.PhoneNumber)
	b.text("endereco", p.Address)
	b.text("cidade", p.City)
	b.text("estado", p.State)
	b.text("cep", p.Postcode)
	b.date("data_nascimento", dateOfBirth(p, now))
	b.date("data_cadastro", lookback(p, now, 2))
	b.set("salario", round2(r.Float64Range(1000, 15000)))
	b.set("status", r.RandomString(landingStatus))
	b.text("empresa", p.Company)
	b.set("score_credito", r.IntRange(300, 850))
	b.set("limite_credito", round2(r.Float64Range(1000, 50000)))
	b.date("ultima_compra", lookback(p, now, 1))
	b.set("total_compras", round2(r.Float64Range(0, 100000)))
	b.set("categoria", r.RandomString(cloudXCategorias))
	b.set("canal_preferido", r.RandomString(cloudXCanais))
	return b.build(string(zone.LandingCloudX))
}
