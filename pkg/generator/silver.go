package generator

import (
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// Provenance constants of the silver zone
const (
	SilverOrigem          = "SAP"
	SilverVersao          = "1.0"
	SilverStatusProcessed = "PROCESSADO"
)

// SilverGroups are the top-level groups of every silver record, besides
// cliente_id
var SilverGroups = []string{"dados_pessoais", "endereco", "dados_profissionais", "preferencias_cliente", "metadados"}

var (
	silverGeneros       = []string{"M", "F", "O"}
	silverEstadoCivil   = []string{"SOLTEIRO", "CASADO", "DIVORCIADO", "VIUVO"}
	silverTipoEndereco  = []string{"RESIDENCIAL", "COMERCIAL", "CORRESPONDENCIA"}
	silverCanais        = []string{"EMAIL", "SMS", "WHATSAPP", "TELEFONE"}
	silverTipoInteresse = []string{"Tecnologia", "Roupas", "Casa", "Esportes", "Livros"}
)

// silverFactory builds enriched SAP customers grouped by subject
type silverFactory struct{ Deps }

func (f *silverFactory) Zone() zone.Zone { return zone.Silver }

func (f *silverFactory) Build() (*models.Record, error) {
	p, r := f.Provider, f.Rand
	now := f.Clock.Now()

	b := newRecordBuilder(6)
	b.text("cliente_id", p.UUID)
	b.group("dados_pessoais", 6, func(g *recordBuilder) {
		g.text("nome_completo", p.Name)
		g.text("email_principal", p.Email)
		g.text("telefone_principal", p.PhoneNumber)
		g.dateText("data_nascimento", dateOfBirth(p, now))
		g.set("genero", r.RandomString(silverGeneros))
		g.set("estado_civil", r.RandomString(silverEstadoCivil))
	})
	b.group("endereco", 7, func(g *recordBuilder) {
		g.text("logradouro", p.StreetAddress)
		g.text("bairro", p.CitySuffix)
		g.text("cidade", p.City)
		g.text("estado", p.State)
		g.text("cep", p.Postcode)
		g.set("pais", "Brasil")
		g.set("tipo_endereco", r.RandomString(silverTipoEndereco))
	})
	b.group("dados_profissionais", 5, func(g *recordBuilder) {
		g.text("empresa", p.Company)
		g.text("cargo", p.Job)
		g.set("salario_bruto", round2(r.Float64Range(3000, 20000)))
		g.dateText("data_admissao", lookback(p, now, 5))
		g.set("setor", r.RandomString(setoresIndustria))
	})
	b.group("preferencias_cliente", 4, func(g *recordBuilder) {
		g.set("canal_preferido", r.RandomString(silverCanais))
		g.set("idioma", "pt-BR")
		g.set("recebe_promocoes", r.Bool())
		g.set("tipo_produto_interesse", r.RandomString(silverTipoInteresse))
	})
	b.group("metadados", 5, func(g *recordBuilder) {
		g.dateText("data_cadastro", lookback(p, now, 2))
		g.set("data_ultima_atualizacao", f.Clock.Now().Format(models.TimestampLayout))
		g.set("origem_dados", SilverOrigem)
		g.set("versao_dados", SilverVersao)
		g.set("status_processamento", SilverStatusProcessed)
	})
	return b.build(string(zone.Silver))
}
