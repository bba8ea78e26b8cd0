// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms HTTP client CLI support package
//
// Command:
// $ goa gen spars/api/design

package client

import (
	"encoding/json"
	"fmt"
	forms "spars/gen/forms"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"
)

// BuildNewsletterPayload builds the payload for the forms newsletter endpoint
// from CLI flags.
func BuildNewsletterPayload(formsNewsletterBody string) (*forms.NewsletterPayload, error) {
	var err error
	var body NewsletterRequestBody
	{
		err = json.Unmarshal([]byte(formsNewsletterBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"email\": \"jane@example.com\"\n   }'")
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if err != nil {
			return nil, err
		}
	}
	v := &forms.NewsletterPayload{
		Email: body.Email,
	}

	return v, nil
}

// BuildContactPayload builds the payload for the forms contact endpoint from
// CLI flags.
func BuildContactPayload(formsContactBody string) (*forms.ContactPayload, error) {
	var err error
	var body ContactRequestBody
	{
		err = json.Unmarshal([]byte(formsContactBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"company\": \"Omnis hic asperiores voluptas sapiente velit.\",\n      \"email\": \"jane@example.com\",\n      \"inquiry_type\": \"General Inquiry\",\n      \"message\": \"g\",\n      \"name\": \"Jane Doe\",\n      \"phone\": \"Laudantium voluptatibus laboriosam.\"\n   }'")
		}
		if utf8.RuneCountInString(body.Name) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 2, true))
		}
		if utf8.RuneCountInString(body.Name) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 100, false))
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if utf8.RuneCountInString(body.Message) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", body.Message, utf8.RuneCountInString(body.Message), 1, true))
		}
		if utf8.RuneCountInString(body.Message) > 5000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", body.Message, utf8.RuneCountInString(body.Message), 5000, false))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &forms.ContactPayload{
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		Company:     body.Company,
		InquiryType: body.InquiryType,
		Message:     body.Message,
	}

	return v, nil
}

// BuildBrochurePayload builds the payload for the forms brochure endpoint from
// CLI flags.
func BuildBrochurePayload(formsBrochureBody string) (*forms.BrochurePayload, error) {
	var err error
	var body BrochureRequestBody
	{
		err = json.Unmarshal([]byte(formsBrochureBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"agreed_to_marketing\": false,\n      \"company\": \"z\",\n      \"email\": \"alisha_jerde@krajciksanford.net\",\n      \"full_name\": \"2p\",\n      \"job_role\": \"Error modi.\",\n      \"phone\": \"Distinctio tempora.\"\n   }'")
		}
		if utf8.RuneCountInString(body.FullName) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.full_name", body.FullName, utf8.RuneCountInString(body.FullName), 2, true))
		}
		if utf8.RuneCountInString(body.FullName) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.full_name", body.FullName, utf8.RuneCountInString(body.FullName), 100, false))
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if utf8.RuneCountInString(body.Company) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.company", body.Company, utf8.RuneCountInString(body.Company), 1, true))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &forms.BrochurePayload{
		FullName:          body.FullName,
		Email:             body.Email,
		Company:           body.Company,
		Phone:             body.Phone,
		JobRole:           body.JobRole,
		AgreedToMarketing: body.AgreedToMarketing,
	}

	return v, nil
}

// BuildProductProfilePayload builds the payload for the forms product_profile
// endpoint from CLI flags.
func BuildProductProfilePayload(formsProductProfileBody string) (*forms.ProductProfilePayload, error) {
	var err error
	var body ProductProfileRequestBody
	{
		err = json.Unmarshal([]byte(formsProductProfileBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"address\": \"Molestiae est qui provident mollitia.\",\n      \"company_name\": \"ml\",\n      \"company_size\": \"Et ut ab autem.\",\n      \"current_system\": \"Et ad placeat doloribus facilis eum minus.\",\n      \"email\": \"waino_olson@powlowski.info\",\n      \"first_name\": \"q\",\n      \"industry\": \"Aut harum ab.\",\n      \"job_title\": \"Recusandae sapiente nihil quasi facere excepturi.\",\n      \"last_name\": \"2r\",\n      \"phone\": \"3x9\",\n      \"requirements\": \"Ut nesciunt officia qui ad.\",\n      \"timeline\": \"In eaque quidem modi ullam.\",\n      \"users\": 7547310904358237270,\n      \"warehouses\": 5694002686149836713,\n      \"website\": \"Nihil et sapiente cupiditate.\"\n   }'")
		}
		if utf8.RuneCountInString(body.FirstName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.first_name", body.FirstName, utf8.RuneCountInString(body.FirstName), 1, true))
		}
		if utf8.RuneCountInString(body.LastName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.last_name", body.LastName, utf8.RuneCountInString(body.LastName), 1, true))
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if utf8.RuneCountInString(body.Phone) < 10 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", body.Phone, utf8.RuneCountInString(body.Phone), 10, true))
		}
		if utf8.RuneCountInString(body.Phone) > 20 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", body.Phone, utf8.RuneCountInString(body.Phone), 20, false))
		}
		if utf8.RuneCountInString(body.CompanyName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.company_name", body.CompanyName, utf8.RuneCountInString(body.CompanyName), 1, true))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &forms.ProductProfilePayload{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Email:         body.Email,
		Phone:         body.Phone,
		JobTitle:      body.JobTitle,
		CompanyName:   body.CompanyName,
		Industry:      body.Industry,
		CompanySize:   body.CompanySize,
		Website:       body.Website,
		Address:       body.Address,
		CurrentSystem: body.CurrentSystem,
		Warehouses:    body.Warehouses,
		Users:         body.Users,
		Requirements:  body.Requirements,
		Timeline:      body.Timeline,
	}

	return v, nil
}

// BuildRequestDemoPayload builds the payload for the forms request_demo
// endpoint from CLI flags.
func BuildRequestDemoPayload(formsRequestDemoBody string) (*forms.RequestDemoPayload, error) {
	var err error
	var body RequestDemoRequestBody
	{
		err = json.Unmarshal([]byte(formsRequestDemoBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"additional_information\": \"Consequuntur mollitia.\",\n      \"company_name\": \"8he\",\n      \"company_size\": \"Quia amet.\",\n      \"email\": \"alisha@kuvalis.info\",\n      \"first_name\": \"3\",\n      \"last_name\": \"z8t\",\n      \"phone\": \"zn6\",\n      \"preferred_demo_date\": \"2025-02-10\",\n      \"preferred_demo_time\": \"Iusto rem.\"\n   }'")
		}
		if utf8.RuneCountInString(body.FirstName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.first_name", body.FirstName, utf8.RuneCountInString(body.FirstName), 1, true))
		}
		if utf8.RuneCountInString(body.LastName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.last_name", body.LastName, utf8.RuneCountInString(body.LastName), 1, true))
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if utf8.RuneCountInString(body.Phone) < 10 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", body.Phone, utf8.RuneCountInString(body.Phone), 10, true))
		}
		if utf8.RuneCountInString(body.Phone) > 20 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", body.Phone, utf8.RuneCountInString(body.Phone), 20, false))
		}
		if utf8.RuneCountInString(body.CompanyName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.company_name", body.CompanyName, utf8.RuneCountInString(body.CompanyName), 1, true))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &forms.RequestDemoPayload{
		FirstName:             body.FirstName,
		LastName:              body.LastName,
		Email:                 body.Email,
		Phone:                 body.Phone,
		CompanyName:           body.CompanyName,
		CompanySize:           body.CompanySize,
		PreferredDemoDate:     body.PreferredDemoDate,
		PreferredDemoTime:     body.PreferredDemoTime,
		AdditionalInformation: body.AdditionalInformation,
	}

	return v, nil
}

// BuildTalkToSalesPayload builds the payload for the forms talk_to_sales
// endpoint from CLI flags.
func BuildTalkToSalesPayload(formsTalkToSalesBody string) (*forms.TalkToSalesPayload, error) {
	var err error
	var body TalkToSalesRequestBody
	{
		err = json.Unmarshal([]byte(formsTalkToSalesBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"company\": \"Sunt sit recusandae et.\",\n      \"current_system\": \"Sapiente ut earum.\",\n      \"email\": \"audie@goodwinrippin.info\",\n      \"message\": \"5z\",\n      \"name\": \"yka\",\n      \"phone\": \"to3\",\n      \"requirements\": \"Sunt ea placeat ipsa illum porro.\",\n      \"timeline\": \"Ut repellendus nulla fugit et quas eos.\",\n      \"users\": 4429188178111975351,\n      \"warehouses\": 6881698125009328414\n   }'")
		}
		if utf8.RuneCountInString(body.Name) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 2, true))
		}
		if utf8.RuneCountInString(body.Name) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 100, false))
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if utf8.RuneCountInString(body.Phone) < 10 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", body.Phone, utf8.RuneCountInString(body.Phone), 10, true))
		}
		if utf8.RuneCountInString(body.Phone) > 20 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", body.Phone, utf8.RuneCountInString(body.Phone), 20, false))
		}
		if utf8.RuneCountInString(body.Message) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", body.Message, utf8.RuneCountInString(body.Message), 1, true))
		}
		if utf8.RuneCountInString(body.Message) > 5000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", body.Message, utf8.RuneCountInString(body.Message), 5000, false))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &forms.TalkToSalesPayload{
		Name:          body.Name,
		Email:         body.Email,
		Phone:         body.Phone,
		Company:       body.Company,
		Message:       body.Message,
		CurrentSystem: body.CurrentSystem,
		Warehouses:    body.Warehouses,
		Users:         body.Users,
		Requirements:  body.Requirements,
		Timeline:      body.Timeline,
	}

	return v, nil
}
