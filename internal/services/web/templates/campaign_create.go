package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CampaignFormView drives the campaign creation form.
type CampaignFormView struct {
	Action      string
	FormID      string
	Title       string
	Description string
	GoalAmount  string
	Deadline    string
	Category    string
	CreatorName string
	Categories  []SelectOption
	MinDeadline string
	// Errors maps field ids to validation messages.
	Errors map[string]string
	// SubmitError is shown next to the submit button after a failed submission.
	SubmitError string
	// Submitting disables the submit control while a submission is in flight.
	Submitting bool
}

// CampaignCreate renders the campaign creation form.
func CampaignCreate(view CampaignFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="campaign-create">`)
		h.element("h1", T(loc, "create.title"))
		h.raw(`<form id="campaign-form" method="post"`)
		h.attr("action", view.Action)
		h.attr("hx-post", view.Action)
		h.raw(` hx-target="#campaign-form" hx-select="#campaign-form" hx-swap="outerHTML" hx-disabled-elt="find button[type='submit']" novalidate>`)
		h.raw(`<input type="hidden" name="form_id"`)
		h.attr("value", view.FormID)
		h.raw(">")

		writeInput(h, inputSpec{
			id: "title", name: "title", kind: "text", label: T(loc, "create.field.title"),
			value: view.Title, testID: "title-input", maxLength: "100",
			err: translated(loc, view.Errors["title"]),
		})
		writeInput(h, inputSpec{
			id: "description", name: "description", kind: "textarea", label: T(loc, "create.field.description"),
			value: view.Description, testID: "description-input", maxLength: "500",
			err: translated(loc, view.Errors["description"]),
		})
		writeInput(h, inputSpec{
			id: "goalAmount", name: "goalAmount", kind: "number", label: T(loc, "create.field.goal_amount"),
			value: view.GoalAmount, testID: "goalAmount-input", step: "0.01", min: "100",
			err: translated(loc, view.Errors["goalAmount"]),
		})
		writeInput(h, inputSpec{
			id: "deadline", name: "deadline", kind: "date", label: T(loc, "create.field.deadline"),
			value: view.Deadline, testID: "deadline-input", min: view.MinDeadline,
			err: translated(loc, view.Errors["deadline"]),
		})
		writeInput(h, inputSpec{
			id: "category", name: "category", kind: "select", label: T(loc, "create.field.category"),
			testID: "category-select", placeholder: T(loc, "create.category.placeholder"), options: view.Categories,
			err: translated(loc, view.Errors["category"]),
		})
		writeInput(h, inputSpec{
			id: "creatorName", name: "creatorName", kind: "text", label: T(loc, "create.field.creator_name"),
			value: view.CreatorName, testID: "creatorName-input",
			err: translated(loc, view.Errors["creatorName"]),
		})

		h.raw(`<div class="form-actions">`)
		if view.Submitting {
			h.element("p", T(loc, "create.in_progress"), "class", "notice", "role", "status", "data-testid", "submit-pending")
		}
		if view.SubmitError != "" {
			h.element("p", view.SubmitError, "class", "error submit-error", "role", "alert", "data-testid", "submit-error")
		}
		h.raw(`<button type="submit" data-testid="submit-button"`)
		h.flag("disabled", view.Submitting)
		h.raw(">")
		if view.Submitting {
			h.text(T(loc, "create.submitting"))
		} else {
			h.text(T(loc, "create.submit"))
		}
		h.raw("</button></div></form></section>")
		return h.err
	})
}

// inputSpec describes one labelled form control and its error slot.
type inputSpec struct {
	id          string
	name        string
	kind        string
	label       string
	value       string
	testID      string
	step        string
	min         string
	maxLength   string
	placeholder string
	options     []SelectOption
	err         string
	disabled    bool
}

func writeInput(h *htmlWriter, field inputSpec) {
	invalid := field.err != ""
	h.raw(`<div class="field">`)
	h.element("label", field.label, "for", field.id)

	switch field.kind {
	case "textarea":
		h.raw("<textarea")
	case "select":
		h.raw("<select")
	default:
		h.raw("<input")
		h.attr("type", field.kind)
		h.attr("value", field.value)
		h.attrIf(field.step != "", "step", field.step)
		h.attrIf(field.min != "", "min", field.min)
	}
	h.attr("id", field.id)
	h.attr("name", field.name)
	h.attr("data-testid", field.testID)
	h.attrIf(field.maxLength != "", "maxlength", field.maxLength)
	h.attrIf(invalid, "class", "error")
	h.attrIf(invalid, "aria-invalid", "true")
	h.attrIf(invalid, "aria-describedby", field.id+"-error")
	h.flag("disabled", field.disabled)
	h.raw(">")

	switch field.kind {
	case "textarea":
		h.text(field.value)
		h.raw("</textarea>")
	case "select":
		h.raw(`<option value="">`)
		h.text(field.placeholder)
		h.raw("</option>")
		writeOptions(h, field.options)
		h.raw("</select>")
	}

	if invalid {
		h.element("p", field.err, "id", field.id+"-error", "class", "field-error", "data-testid", field.id+"-error")
	}
	h.raw("</div>")
}
