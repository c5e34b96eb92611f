package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Chrome
	message.SetString(lang, "app.name", "Crowdfund")
	message.SetString(lang, "title.page", "%s | Crowdfund")
	message.SetString(lang, "nav.campaigns", "Campaigns")
	message.SetString(lang, "nav.create", "Start a campaign")
	message.SetString(lang, "nav.language", "Language")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")

	// Listing
	message.SetString(lang, "campaigns.title", "Campaigns")
	message.SetString(lang, "campaigns.filter.category", "Category")
	message.SetString(lang, "campaigns.filter.status", "Status")
	message.SetString(lang, "campaigns.filter.all", "All")
	message.SetString(lang, "campaigns.filter.apply", "Filter")
	message.SetString(lang, "campaigns.loading", "Loading campaigns...")
	message.SetString(lang, "campaigns.empty", "No campaigns found.")
	message.SetString(lang, "campaigns.load_failed", "Failed to load campaigns.")

	// Campaign
	message.SetString(lang, "campaign.by", "by %s")
	message.SetString(lang, "campaign.raised_of_goal", "%s raised of %s")
	message.SetString(lang, "campaign.progress", "%d%% funded")
	message.SetString(lang, "campaign.deadline", "Ends %s")
	message.SetString(lang, "campaign.created_at", "Created %s")
	message.SetString(lang, "campaign.status.ACTIVE", "Active")
	message.SetString(lang, "campaign.status.COMPLETED", "Completed")
	message.SetString(lang, "campaign.status.EXPIRED", "Expired")
	message.SetString(lang, "campaign.notice.created", "Campaign created.")

	// Categories
	message.SetString(lang, "category.Animals", "Animals")
	message.SetString(lang, "category.Arts", "Arts")
	message.SetString(lang, "category.Community", "Community")
	message.SetString(lang, "category.Education", "Education")
	message.SetString(lang, "category.Environment", "Environment")
	message.SetString(lang, "category.Health", "Health")
	message.SetString(lang, "category.Technology", "Technology")

	// Donations
	message.SetString(lang, "donations.title", "Donations")
	message.SetString(lang, "donations.empty", "No donations yet.")
	message.SetString(lang, "donation.form.title", "Make a donation")
	message.SetString(lang, "donation.field.amount", "Amount")
	message.SetString(lang, "donation.field.donor_name", "Your name")
	message.SetString(lang, "donation.field.message", "Message (optional)")
	message.SetString(lang, "donation.submit", "Donate")
	message.SetString(lang, "donation.closed", "This campaign is %s and no longer accepts donations.")
	message.SetString(lang, "donation.summary", "Please correct the errors below.")
	message.SetString(lang, "donation.notice.thanks", "Thank you for your donation!")

	// Create form
	message.SetString(lang, "create.title", "Create a campaign")
	message.SetString(lang, "create.field.title", "Title")
	message.SetString(lang, "create.field.description", "Description")
	message.SetString(lang, "create.field.goal_amount", "Goal amount")
	message.SetString(lang, "create.field.deadline", "Deadline")
	message.SetString(lang, "create.field.category", "Category")
	message.SetString(lang, "create.field.creator_name", "Creator name")
	message.SetString(lang, "create.category.placeholder", "Select a category")
	message.SetString(lang, "create.submit", "Create campaign")
	message.SetString(lang, "create.submitting", "Creating...")
	message.SetString(lang, "create.in_progress", "This form is already being submitted. Please wait.")

	// Errors
	message.SetString(lang, "error.title.not_found", "Page not found")
	message.SetString(lang, "error.message.not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "error.title.unavailable", "Service unavailable")
	message.SetString(lang, "error.message.unavailable", "The campaign service is unavailable. Please try again shortly.")
	message.SetString(lang, "error.title.internal", "Something went wrong")
	message.SetString(lang, "error.message.internal", "An unexpected error occurred.")
	message.SetString(lang, "error.back", "Back to campaigns")
}
