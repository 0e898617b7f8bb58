package fake

var ptBRFirstNames = []string{
	"Alice", "Miguel", "Sophia", "Arthur", "Helena", "Bernardo", "Valentina", "Heitor",
	"Laura", "Davi", "Isabella", "Lorenzo", "Manuela", "Théo", "Júlia", "Pedro",
	"Heloísa", "Gabriel", "Luiza", "Enzo", "Maria Luiza", "Matheus", "Lorena", "Lucas",
	"Lívia", "Benjamin", "Giovanna", "Nicolas", "Maria Eduarda", "Guilherme", "Beatriz",
	"Rafael", "Maria Clara", "Joaquim", "Cecília", "Samuel", "Eloá", "Enzo Gabriel",
	"Lara", "João Miguel", "Maria Júlia", "Henrique", "Isadora", "Gustavo", "Mariana",
	"Murilo", "Emanuelly", "Pietro", "Ana Júlia", "Lucca", "Ana Luiza", "Felipe",
	"Ana Clara", "João Pedro", "Melissa", "Isaac", "Yasmin", "Benício", "Maria Alice",
	"Daniel", "Isabelly", "Anthony", "Lavínia", "Leonardo", "Esther", "Davi Lucca",
	"Sarah", "Bryan", "Elisa", "Eduardo", "Antonella", "João Lucas", "Rafaela",
	"Victor", "Maria Cecília", "João", "Liz", "Cauã", "Marina", "Antônio", "Nicole",
	"Vicente", "Maitê", "Caleb", "Isis", "Gael", "Alícia", "Bento", "Luna", "Caio",
	"Rebeca", "Emanuel", "Agatha", "Vinícius", "Letícia", "João Guilherme", "Maria",
	"Davi Lucas", "Gabriela", "Noah", "Ana Laura", "João Gabriel", "Catarina",
}

var ptBRLastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
	"Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes",
	"Soares", "Fernandes", "Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
	"Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas", "Cardoso", "Ramos",
	"Gonçalves", "Santana", "Teixeira", "Araújo", "Pinto", "Correia", "Castro", "Monteiro",
	"Moura", "Cavalcanti", "Azevedo", "Campos", "Duarte", "Fogaça", "Peixoto", "Porto",
	"da Cunha", "da Mata", "da Paz", "da Rosa", "das Neves", "Jesus", "Melo", "Farias",
	"Sales", "Viana", "Novaes", "Rezende", "Sampaio", "Siqueira", "Aragão", "Cirino",
}

var ptBRPrefixes = []string{"Sr.", "Sra.", "Srta.", "Dr.", "Dra."}

var ptBRFreeEmailDomains = []string{
	"gmail.com", "hotmail.com", "yahoo.com.br", "bol.com.br", "uol.com.br", "ig.com.br", "outlook.com",
}

var ptBRStreetPrefixes = []string{
	"Aeroporto", "Alameda", "Área", "Avenida", "Campo", "Chácara", "Colônia", "Condomínio",
	"Conjunto", "Distrito", "Esplanada", "Estação", "Estrada", "Favela", "Fazenda", "Feira",
	"Jardim", "Ladeira", "Lago", "Lagoa", "Largo", "Loteamento", "Morro", "Núcleo",
	"Parque", "Passarela", "Pátio", "Praça", "Quadra", "Recanto", "Residencial", "Rodovia",
	"Rua", "Setor", "Sítio", "Travessa", "Trecho", "Trevo", "Vale", "Vereda", "Via",
	"Viaduto", "Viela", "Vila",
}

var ptBRBairros = []string{
	"Aarão Reis", "Acaba Mundo", "Alto Barroca", "Alto Vera Cruz", "Anchieta", "Barro Preto",
	"Barroca", "Bela Vista", "Boa Viagem", "Bonfim", "Buritis", "Cachoeirinha", "Caiçara",
	"Calafate", "Carlos Prates", "Centro", "Cidade Nova", "Coração Eucarístico", "Cruzeiro",
	"Floresta", "Funcionários", "Gutierrez", "Horto", "Jardim América", "Lagoinha",
	"Lourdes", "Luxemburgo", "Mangabeiras", "Nova Suíça", "Ouro Preto", "Padre Eustáquio",
	"Pampulha", "Planalto", "Sagrada Família", "Santa Efigênia", "Santa Tereza", "Santo Agostinho",
	"Santo Antônio", "São Bento", "São Lucas", "São Pedro", "Savassi", "Serra", "Sion", "Vila Paris",
}

var ptBRCitySuffixes = []string{
	"do Sul", "do Norte", "de Minas", "do Campo", "Grande", "da Serra", "do Oeste",
	"de Goiás", "Paulista", "da Mata", "Alegre", "da Praia", "das Flores", "das Pedras",
	"dos Dourados", "do Amparo", "do Galho", "da Prata", "Verde",
}

// state name and abbreviation
var ptBRStates = [][2]string{
	{"Acre", "AC"}, {"Alagoas", "AL"}, {"Amapá", "AP"}, {"Amazonas", "AM"}, {"Bahia", "BA"},
	{"Ceará", "CE"}, {"Distrito Federal", "DF"}, {"Espírito Santo", "ES"}, {"Goiás", "GO"},
	{"Maranhão", "MA"}, {"Mato Grosso", "MT"}, {"Mato Grosso do Sul", "MS"}, {"Minas Gerais", "MG"},
	{"Pará", "PA"}, {"Paraíba", "PB"}, {"Paraná", "PR"}, {"Pernambuco", "PE"}, {"Piauí", "PI"},
	{"Rio de Janeiro", "RJ"}, {"Rio Grande do Norte", "RN"}, {"Rio Grande do Sul", "RS"},
	{"Rondônia", "RO"}, {"Roraima", "RR"}, {"Santa Catarina", "SC"}, {"São Paulo", "SP"},
	{"Sergipe", "SE"}, {"Tocantins", "TO"},
}

var ptBRCompanySuffixes = []string{"S/A", "S.A.", "Ltda.", "- ME", "- EI", "e Filhos"}

var ptBRJobs = []string{
	"Administrador", "Advogado", "Agente de viagens", "Analista de sistemas", "Arquiteto",
	"Assistente administrativo", "Assistente social", "Auditor", "Auxiliar de enfermagem",
	"Bibliotecário", "Biólogo", "Caixa", "Contador", "Coordenador de vendas", "Corretor de imóveis",
	"Cozinheiro", "Dentista", "Designer gráfico", "Economista", "Eletricista", "Enfermeiro",
	"Engenheiro civil", "Engenheiro de produção", "Estatístico", "Farmacêutico", "Fisioterapeuta",
	"Fotógrafo", "Gerente de projetos", "Gerente comercial", "Jornalista", "Médico",
	"Motorista", "Nutricionista", "Operador de caixa", "Pedreiro", "Professor", "Programador",
	"Psicólogo", "Publicitário", "Recepcionista", "Secretária", "Técnico em informática",
	"Tradutor", "Vendedor", "Veterinário", "Zootecnista",
}

var ptBRPhoneFormats = []string{
	"+55 (0##) #### ####",
	"+55 (0##) ####-####",
	"+55 ## #### ####",
	"+55 ## 9#### ####",
	"(0##) #### ####",
	"(0##) ####-####",
	"0## #### ####",
	"0## ####-####",
	"0300 ### ####",
	"0500-###-####",
	"0800 ### ####",
	"0900-###-####",
}
