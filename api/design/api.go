package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("spars", func() {
	Title("SPARS Backend API")
	Description("Backend API for the SPARS marketing site - form intake, chatbot, and document downloads")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Common error types
var BadRequest = Type("BadRequest", func() {
	Description("Bad request")
	Attribute("message", String, "Error message", func() {
		Example("Invalid request")
	})
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("timestamp", String, "Server time in RFC 3339 format", func() {
		Example("2025-01-15T10:30:00Z")
	})
})

// Forms service
var _ = Service("forms", func() {
	Description("Marketing form intake service")
	Error("bad_request", BadRequest)

	Method("newsletter", func() {
		Description("Subscribe to the newsletter")
		Payload(NewsletterPayload)
		Result(FormResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/newsletter")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("contact", func() {
		Description("Submit the contact form")
		Payload(ContactPayload)
		Result(FormResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/contact")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("brochure", func() {
		Description("Request the product brochure")
		Payload(BrochurePayload)
		Result(DocumentFormResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/brochure")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("product_profile", func() {
		Description("Request the product profile document")
		Payload(ProductProfilePayload)
		Result(DocumentFormResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/product-profile")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("request_demo", func() {
		Description("Request a product demo")
		Payload(RequestDemoPayload)
		Result(FormResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/request-demo")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("talk_to_sales", func() {
		Description("Request a conversation with the sales team")
		Payload(TalkToSalesPayload)
		Result(FormResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/talk-to-sales")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})
})

var FormResult = ResultType("FormResult", func() {
	Attribute("success", Boolean, "Whether the submission was accepted")
	Attribute("message", String, "Human-readable confirmation message", func() {
		Example("Thank you for contacting us. We will get back to you soon!")
	})
	Required("success", "message")
})

var DocumentFormResult = ResultType("DocumentFormResult", func() {
	Attribute("success", Boolean, "Whether the submission was accepted")
	Attribute("message", String, "Human-readable confirmation message")
	Attribute("has_pdf", Boolean, "Whether the requested document is available for download")
	Required("success", "message", "has_pdf")
})

var NewsletterPayload = Type("NewsletterPayload", func() {
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		Example("jane@example.com")
	})
	Required("email")
})

var ContactPayload = Type("ContactPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		MaxLength(100)
		Example("Jane Doe")
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		Example("jane@example.com")
	})
	Attribute("phone", String, "Phone number (optional)")
	Attribute("company", String, "Company name (optional)")
	Attribute("inquiry_type", String, "Inquiry category", func() {
		Example("General Inquiry")
	})
	Attribute("message", String, "Message", func() {
		MinLength(1)
		MaxLength(5000)
	})
	Required("name", "email", "inquiry_type", "message")
})

var BrochurePayload = Type("BrochurePayload", func() {
	Attribute("full_name", String, "Full name", func() {
		MinLength(2)
		MaxLength(100)
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("company", String, "Company name", func() {
		MinLength(1)
	})
	Attribute("phone", String, "Phone number (optional)")
	Attribute("job_role", String, "Job role (optional)")
	Attribute("agreed_to_marketing", Boolean, "Marketing consent", func() {
		Default(false)
	})
	Required("full_name", "email", "company", "agreed_to_marketing")
})

var ProductProfilePayload = Type("ProductProfilePayload", func() {
	Attribute("first_name", String, "First name", func() {
		MinLength(1)
	})
	Attribute("last_name", String, "Last name", func() {
		MinLength(1)
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("phone", String, "Phone number", func() {
		MinLength(10)
		MaxLength(20)
	})
	Attribute("job_title", String, "Job title (optional)")
	Attribute("company_name", String, "Company name", func() {
		MinLength(1)
	})
	Attribute("industry", String, "Industry (optional)")
	Attribute("company_size", String, "Company size (optional)")
	Attribute("website", String, "Company website (optional)")
	Attribute("address", String, "Company address (optional)")
	Attribute("current_system", String, "Current system in use (optional)")
	Attribute("warehouses", Int, "Number of warehouses (optional)")
	Attribute("users", Int, "Expected number of users (optional)")
	Attribute("requirements", String, "Requirements description (optional)")
	Attribute("timeline", String, "Implementation timeline (optional)")
	Required("first_name", "last_name", "email", "phone", "company_name")
})

var RequestDemoPayload = Type("RequestDemoPayload", func() {
	Attribute("first_name", String, "First name", func() {
		MinLength(1)
	})
	Attribute("last_name", String, "Last name", func() {
		MinLength(1)
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("phone", String, "Phone number", func() {
		MinLength(10)
		MaxLength(20)
	})
	Attribute("company_name", String, "Company name", func() {
		MinLength(1)
	})
	Attribute("company_size", String, "Company size (optional)")
	Attribute("preferred_demo_date", String, "Preferred demo date", func() {
		Example("2025-02-10")
	})
	Attribute("preferred_demo_time", String, "Preferred demo time (optional)")
	Attribute("additional_information", String, "Anything else we should know (optional)")
	Required("first_name", "last_name", "email", "phone", "company_name", "preferred_demo_date")
})

var TalkToSalesPayload = Type("TalkToSalesPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		MaxLength(100)
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("phone", String, "Phone number", func() {
		MinLength(10)
		MaxLength(20)
	})
	Attribute("company", String, "Company name (optional)")
	Attribute("message", String, "Message", func() {
		MinLength(1)
		MaxLength(5000)
	})
	Attribute("current_system", String, "Current system in use (optional)")
	Attribute("warehouses", Int, "Number of warehouses (optional)")
	Attribute("users", Int, "Expected number of users (optional)")
	Attribute("requirements", String, "Requirements description (optional)")
	Attribute("timeline", String, "Implementation timeline (optional)")
	Required("name", "email", "phone", "message")
})

// Chatbot service
var _ = Service("chatbot", func() {
	Description("Website assistant service")
	Error("bad_request", BadRequest)

	Method("chat", func() {
		Description("Send a message to the assistant")
		Payload(ChatPayload)
		Result(ChatResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/chatbot")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})
})

var ChatEntry = Type("ChatEntry", func() {
	Attribute("role", String, "Message author", func() {
		Enum("user", "assistant")
	})
	Attribute("content", String, "Message text")
	Required("role", "content")
})

var ChatPayload = Type("ChatPayload", func() {
	Attribute("message", String, "Visitor message", func() {
		MinLength(1)
		MaxLength(2000)
		Example("What does SPARS cost?")
	})
	Attribute("conversation_history", ArrayOf(ChatEntry), "Prior exchanges, oldest first")
	Required("message")
})

var ChatResult = ResultType("ChatResult", func() {
	Attribute("response", String, "Assistant reply")
	Attribute("success", Boolean, "Whether a reply was produced")
	Required("response", "success")
})
