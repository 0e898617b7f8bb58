package generator

import (
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// Provenance constants of the gold zone
const (
	GoldOrigem = "CLOUD_X"
	GoldVersao = "2.0"
)

var (
	goldRegioes   = []string{"NORTE", "NORDESTE", "CENTRO-OESTE", "SUDESTE", "SUL"}
	goldStatus    = []string{"ATIVO", "INATIVO", "POTENCIAL"}
	goldSegmentos = []string{"PREMIUM", "STANDARD", "BASIC", "VIP"}
	goldCanais    = []string{"DIGITAL", "FISICO", "HIBRIDO"}
)

// goldFactory builds analytical customer profiles. Salary and age are drawn
// first so their brackets derive from the stored values. The risk category
// comes from a second, independent score draw and is not tied to
// score_credito.
type goldFactory struct{ Deps }

func (f *goldFactory) Zone() zone.Zone { return zone.Gold }

func (f *goldFactory) Build() (*models.Record, error) {
	p, r := f.Provider, f.Rand
	now := f.Clock.Now()

	salario := round2(r.Float64Range(4000, 25000))
	idade := r.IntRange(25, 65)

	b := newRecordBuilder(31)
	b.text("cliente_id", p.UUID)
	b.text("nome_completo", p.Name)
	b.text("email", p.Email)
	b.text("telefone", p.PhoneNumber)
	b.set("idade", idade)
	b.set("faixa_etaria", AgeBracket(idade))
	b.text("cidade", p.City)
	b.text("estado", p.State)
	b.set("regiao", r.RandomString(goldRegioes))
	b.set("salario_bruto", salario)
	b.set("faixa_salarial", SalaryBracket(salario))
	b.text("empresa", p.Company)
	b.text("cargo", p.Job)
	b.set("setor", r.RandomString(setoresIndustria))
	b.set("score_credito", r.IntRange(400, 850))
	b.set("categoria_risco", RiskCategory(r.IntRange(400, 850)))
	b.set("limite_credito", round2(r.Float64Range(2000, 100000)))
	b.set("total_compras_ano", round2(r.Float64Range(0, 150000)))
	b.set("ticket_medio", round2(r.Float64Range(50, 5000)))
	b.set("frequencia_compras", r.IntRange(1, 52))
	b.date("ultima_compra", lookback(p, now, 1))
	b.set("status_cliente", r.RandomString(goldStatus))
	b.set("segmento_cliente", r.RandomString(goldSegmentos))
	b.set("canal_preferido", r.RandomString(goldCanais))
	b.set("propensao_compra", round3(r.Float64Range(0, 1)))
	b.set("valor_vida_cliente", round2(r.Float64Range(1000, 500000)))
	b.date("data_cadastro", lookback(p, now, 3))
	b.set("dias_desde_cadastro", r.IntRange(1, 1095))
	b.set("data_ultima_atualizacao", f.Clock.Now().Format(models.TimestampLayout))
	b.set("origem_dados", GoldOrigem)
	b.set("versao_dados", GoldVersao)
	return b.build(string(zone.Gold))
}
