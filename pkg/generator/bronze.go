package generator

import (
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

var bronzeStatus = []string{"ATIVO", "INATIVO", "SUSPENSO"}

// bronzeFactory builds flat Protheus customers ready for CSV
type bronzeFactory struct{ Deps }

func (f *bronzeFactory) Zone() zone.Zone { return zone.Bronze }

func (f *bronzeFactory) Build() (*models.Record, error) {
	p, r := f.Provider, f.Rand
	now := f.Clock.Now()

	b := newRecordBuilder(15)
	b.text("cliente_id", p.UUID)
	b.text("nome_completo", p.Name)
	b.text("email", p.Email)
	b.text("telefone", p.PhoneNumber)
	b.text("endereco_completo", p.Address)
	b.text("cidade", p.City)
	b.text("estado", p.State)
	b.text("cep", p.Postcode)
	b.dateText("data_nascimento", dateOfBirth(p, now))
	b.dateText("data_cadastro", lookback(p, now, 2))
	b.set("salario_mensal", round2(r.Float64Range(2000, 15000)))
	b.set("status_cliente", r.RandomString(bronzeStatus))
	b.text("empresa", p.Company)
	b.text("cargo", p.Job)
	b.set("data_atualizacao", f.Clock.Now().Format(models.TimestampLayout))
	return b.build(string(zone.Bronze))
}
