package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Chrome
	message.SetString(lang, "app.name", "Crowdfund")
	message.SetString(lang, "title.page", "%s | Crowdfund")
	message.SetString(lang, "nav.campaigns", "Campanhas")
	message.SetString(lang, "nav.create", "Criar campanha")
	message.SetString(lang, "nav.language", "Idioma")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")

	// Listing
	message.SetString(lang, "campaigns.title", "Campanhas")
	message.SetString(lang, "campaigns.filter.category", "Categoria")
	message.SetString(lang, "campaigns.filter.status", "Situação")
	message.SetString(lang, "campaigns.filter.all", "Todas")
	message.SetString(lang, "campaigns.filter.apply", "Filtrar")
	message.SetString(lang, "campaigns.loading", "Carregando campanhas...")
	message.SetString(lang, "campaigns.empty", "Nenhuma campanha encontrada.")
	message.SetString(lang, "campaigns.load_failed", "Falha ao carregar campanhas.")

	// Campaign
	message.SetString(lang, "campaign.by", "por %s")
	message.SetString(lang, "campaign.raised_of_goal", "%s arrecadados de %s")
	message.SetString(lang, "campaign.progress", "%d%% financiado")
	message.SetString(lang, "campaign.deadline", "Termina em %s")
	message.SetString(lang, "campaign.created_at", "Criada em %s")
	message.SetString(lang, "campaign.status.ACTIVE", "Ativa")
	message.SetString(lang, "campaign.status.COMPLETED", "Concluída")
	message.SetString(lang, "campaign.status.EXPIRED", "Expirada")
	message.SetString(lang, "campaign.notice.created", "Campanha criada.")

	// Categories
	message.SetString(lang, "category.Animals", "Animais")
	message.SetString(lang, "category.Arts", "Artes")
	message.SetString(lang, "category.Community", "Comunidade")
	message.SetString(lang, "category.Education", "Educação")
	message.SetString(lang, "category.Environment", "Meio ambiente")
	message.SetString(lang, "category.Health", "Saúde")
	message.SetString(lang, "category.Technology", "Tecnologia")

	// Donations
	message.SetString(lang, "donations.title", "Doações")
	message.SetString(lang, "donations.empty", "Nenhuma doação ainda.")
	message.SetString(lang, "donation.form.title", "Fazer uma doação")
	message.SetString(lang, "donation.field.amount", "Valor")
	message.SetString(lang, "donation.field.donor_name", "Seu nome")
	message.SetString(lang, "donation.field.message", "Mensagem (opcional)")
	message.SetString(lang, "donation.submit", "Doar")
	message.SetString(lang, "donation.closed", "Esta campanha está %s e não aceita mais doações.")
	message.SetString(lang, "donation.summary", "Corrija os erros abaixo.")
	message.SetString(lang, "donation.notice.thanks", "Obrigado pela sua doação!")

	// Create form
	message.SetString(lang, "create.title", "Criar uma campanha")
	message.SetString(lang, "create.field.title", "Título")
	message.SetString(lang, "create.field.description", "Descrição")
	message.SetString(lang, "create.field.goal_amount", "Meta")
	message.SetString(lang, "create.field.deadline", "Prazo")
	message.SetString(lang, "create.field.category", "Categoria")
	message.SetString(lang, "create.field.creator_name", "Nome do criador")
	message.SetString(lang, "create.category.placeholder", "Selecione uma categoria")
	message.SetString(lang, "create.submit", "Criar campanha")
	message.SetString(lang, "create.submitting", "Criando...")
	message.SetString(lang, "create.in_progress", "Este formulário já está sendo enviado. Aguarde.")

	// Errors
	message.SetString(lang, "error.title.not_found", "Página não encontrada")
	message.SetString(lang, "error.message.not_found", "A página que você procura não existe.")
	message.SetString(lang, "error.title.unavailable", "Serviço indisponível")
	message.SetString(lang, "error.message.unavailable", "O serviço de campanhas está indisponível. Tente novamente em instantes.")
	message.SetString(lang, "error.title.internal", "Algo deu errado")
	message.SetString(lang, "error.message.internal", "Ocorreu um erro inesperado.")
	message.SetString(lang, "error.back", "Voltar para campanhas")

	// Validation and submission copy is keyed by its English text.
	message.SetString(lang, "This field is required.", "Este campo é obrigatório.")
	message.SetString(lang, "Title must be 5-100 characters.", "O título deve ter de 5 a 100 caracteres.")
	message.SetString(lang, "Description must be 20-500 characters.", "A descrição deve ter de 20 a 500 caracteres.")
	message.SetString(lang, "Goal amount must be a valid number.", "A meta deve ser um número válido.")
	message.SetString(lang, "Goal amount must be at least 100.00.", "A meta deve ser de pelo menos 100.00.")
	message.SetString(lang, "Deadline must be a valid date.", "O prazo deve ser uma data válida.")
	message.SetString(lang, "Deadline must be a future date.", "O prazo deve ser uma data futura.")
	message.SetString(lang, "Category must be one of the listed options.", "A categoria deve ser uma das opções listadas.")
	message.SetString(lang, "Donation amount must be a valid number.", "O valor da doação deve ser um número válido.")
	message.SetString(lang, "Donation amount must be at least 1.00.", "O valor da doação deve ser de pelo menos 1.00.")
	message.SetString(lang, "Message must be at most 500 characters.", "A mensagem deve ter no máximo 500 caracteres.")
	message.SetString(lang, "Failed to create campaign. Please try again.", "Falha ao criar a campanha. Tente novamente.")
	message.SetString(lang, "Failed to make donation. Please try again.", "Falha ao fazer a doação. Tente novamente.")
	message.SetString(lang, "This campaign is not accepting donations.", "Esta campanha não está aceitando doações.")
}
