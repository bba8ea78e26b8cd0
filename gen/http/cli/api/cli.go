// Code generated by goa v3.23.1, DO NOT EDIT.
//
// api HTTP client CLI support package
//
// Command:
// $ goa gen spars/api/design

package cli

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	chatbotc "spars/gen/http/chatbot/client"
	formsc "spars/gen/http/forms/client"
	healthc "spars/gen/http/health/client"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// UsageCommands returns the set of commands and sub-commands using the format
//
//	command (subcommand1|subcommand2|...)
func UsageCommands() []string {
	return []string{
		"health check",
		"forms (newsletter|contact|brochure|product-profile|request-demo|talk-to-sales)",
		"chatbot chat",
	}
}

// UsageExamples produces an example of a valid invocation of the CLI tool.
func UsageExamples() string {
	return os.Args[0] + " " + "health check" + "\n" +
		os.Args[0] + " " + "forms newsletter --body '{\n      \"email\": \"jane@example.com\"\n   }'" + "\n" +
		os.Args[0] + " " + "chatbot chat --body '{\n      \"conversation_history\": [\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         },\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         },\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         }\n      ],\n      \"message\": \"What does SPARS cost?\"\n   }'" + "\n" +
		""
}

// ParseEndpoint returns the endpoint and payload as specified on the command
// line.
func ParseEndpoint(
	scheme, host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restore bool,
) (goa.Endpoint, any, error) {
	var (
		healthFlags = flag.NewFlagSet("health", flag.ContinueOnError)

		healthCheckFlags = flag.NewFlagSet("check", flag.ExitOnError)

		formsFlags = flag.NewFlagSet("forms", flag.ContinueOnError)

		formsNewsletterFlags    = flag.NewFlagSet("newsletter", flag.ExitOnError)
		formsNewsletterBodyFlag = formsNewsletterFlags.String("body", "REQUIRED", "")

		formsContactFlags    = flag.NewFlagSet("contact", flag.ExitOnError)
		formsContactBodyFlag = formsContactFlags.String("body", "REQUIRED", "")

		formsBrochureFlags    = flag.NewFlagSet("brochure", flag.ExitOnError)
		formsBrochureBodyFlag = formsBrochureFlags.String("body", "REQUIRED", "")

		formsProductProfileFlags    = flag.NewFlagSet("product-profile", flag.ExitOnError)
		formsProductProfileBodyFlag = formsProductProfileFlags.String("body", "REQUIRED", "")

		formsRequestDemoFlags    = flag.NewFlagSet("request-demo", flag.ExitOnError)
		formsRequestDemoBodyFlag = formsRequestDemoFlags.String("body", "REQUIRED", "")

		formsTalkToSalesFlags    = flag.NewFlagSet("talk-to-sales", flag.ExitOnError)
		formsTalkToSalesBodyFlag = formsTalkToSalesFlags.String("body", "REQUIRED", "")

		chatbotFlags = flag.NewFlagSet("chatbot", flag.ContinueOnError)

		chatbotChatFlags    = flag.NewFlagSet("chat", flag.ExitOnError)
		chatbotChatBodyFlag = chatbotChatFlags.String("body", "REQUIRED", "")
	)
	healthFlags.Usage = healthUsage
	healthCheckFlags.Usage = healthCheckUsage

	formsFlags.Usage = formsUsage
	formsNewsletterFlags.Usage = formsNewsletterUsage
	formsContactFlags.Usage = formsContactUsage
	formsBrochureFlags.Usage = formsBrochureUsage
	formsProductProfileFlags.Usage = formsProductProfileUsage
	formsRequestDemoFlags.Usage = formsRequestDemoUsage
	formsTalkToSalesFlags.Usage = formsTalkToSalesUsage

	chatbotFlags.Usage = chatbotUsage
	chatbotChatFlags.Usage = chatbotChatUsage

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, nil, err
	}

	if flag.NArg() < 2 { // two non flag args are required: SERVICE and ENDPOINT (aka COMMAND)
		return nil, nil, fmt.Errorf("not enough arguments")
	}

	var (
		svcn string
		svcf *flag.FlagSet
	)
	{
		svcn = flag.Arg(0)
		switch svcn {
		case "health":
			svcf = healthFlags
		case "forms":
			svcf = formsFlags
		case "chatbot":
			svcf = chatbotFlags
		default:
			return nil, nil, fmt.Errorf("unknown service %q", svcn)
		}
	}
	if err := svcf.Parse(flag.Args()[1:]); err != nil {
		return nil, nil, err
	}

	var (
		epn string
		epf *flag.FlagSet
	)
	{
		epn = svcf.Arg(0)
		switch svcn {
		case "health":
			switch epn {
			case "check":
				epf = healthCheckFlags

			}

		case "forms":
			switch epn {
			case "newsletter":
				epf = formsNewsletterFlags

			case "contact":
				epf = formsContactFlags

			case "brochure":
				epf = formsBrochureFlags

			case "product-profile":
				epf = formsProductProfileFlags

			case "request-demo":
				epf = formsRequestDemoFlags

			case "talk-to-sales":
				epf = formsTalkToSalesFlags

			}

		case "chatbot":
			switch epn {
			case "chat":
				epf = chatbotChatFlags

			}

		}
	}
	if epf == nil {
		return nil, nil, fmt.Errorf("unknown %q endpoint %q", svcn, epn)
	}

	// Parse endpoint flags if any
	if svcf.NArg() > 1 {
		if err := epf.Parse(svcf.Args()[1:]); err != nil {
			return nil, nil, err
		}
	}

	var (
		data     any
		endpoint goa.Endpoint
		err      error
	)
	{
		switch svcn {
		case "health":
			c := healthc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "check":
				endpoint = c.Check()
			}
		case "forms":
			c := formsc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "newsletter":
				endpoint = c.Newsletter()
				data, err = formsc.BuildNewsletterPayload(*formsNewsletterBodyFlag)
			case "contact":
				endpoint = c.Contact()
				data, err = formsc.BuildContactPayload(*formsContactBodyFlag)
			case "brochure":
				endpoint = c.Brochure()
				data, err = formsc.BuildBrochurePayload(*formsBrochureBodyFlag)
			case "product-profile":
				endpoint = c.ProductProfile()
				data, err = formsc.BuildProductProfilePayload(*formsProductProfileBodyFlag)
			case "request-demo":
				endpoint = c.RequestDemo()
				data, err = formsc.BuildRequestDemoPayload(*formsRequestDemoBodyFlag)
			case "talk-to-sales":
				endpoint = c.TalkToSales()
				data, err = formsc.BuildTalkToSalesPayload(*formsTalkToSalesBodyFlag)
			}
		case "chatbot":
			c := chatbotc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "chat":
				endpoint = c.Chat()
				data, err = chatbotc.BuildChatPayload(*chatbotChatBodyFlag)
			}
		}
	}
	if err != nil {
		return nil, nil, err
	}

	return endpoint, data, nil
}

// healthUsage displays the usage of the health command and its subcommands.
func healthUsage() {
	fmt.Fprintln(os.Stderr, `Health check service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] health COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    check: Check implements check.`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s health COMMAND --help\n", os.Args[0])
}
func healthCheckUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] health check", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Check implements check.`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "health check")
}

// formsUsage displays the usage of the forms command and its subcommands.
func formsUsage() {
	fmt.Fprintln(os.Stderr, `Marketing form intake service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] forms COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    newsletter: Subscribe to the newsletter`)
	fmt.Fprintln(os.Stderr, `    contact: Submit the contact form`)
	fmt.Fprintln(os.Stderr, `    brochure: Request the product brochure`)
	fmt.Fprintln(os.Stderr, `    product-profile: Request the product profile document`)
	fmt.Fprintln(os.Stderr, `    request-demo: Request a product demo`)
	fmt.Fprintln(os.Stderr, `    talk-to-sales: Request a conversation with the sales team`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s forms COMMAND --help\n", os.Args[0])
}
func formsNewsletterUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] forms newsletter", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Subscribe to the newsletter`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "forms newsletter --body '{\n      \"email\": \"jane@example.com\"\n   }'")
}

func formsContactUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] forms contact", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Submit the contact form`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "forms contact --body '{\n      \"company\": \"Omnis hic asperiores voluptas sapiente velit.\",\n      \"email\": \"jane@example.com\",\n      \"inquiry_type\": \"General Inquiry\",\n      \"message\": \"g\",\n      \"name\": \"Jane Doe\",\n      \"phone\": \"Laudantium voluptatibus laboriosam.\"\n   }'")
}

func formsBrochureUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] forms brochure", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Request the product brochure`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "forms brochure --body '{\n      \"agreed_to_marketing\": false,\n      \"company\": \"z\",\n      \"email\": \"alisha_jerde@krajciksanford.net\",\n      \"full_name\": \"2p\",\n      \"job_role\": \"Error modi.\",\n      \"phone\": \"Distinctio tempora.\"\n   }'")
}

func formsProductProfileUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] forms product-profile", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Request the product profile document`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "forms product-profile --body '{\n      \"address\": \"Molestiae est qui provident mollitia.\",\n      \"company_name\": \"ml\",\n      \"company_size\": \"Et ut ab autem.\",\n      \"current_system\": \"Et ad placeat doloribus facilis eum minus.\",\n      \"email\": \"waino_olson@powlowski.info\",\n      \"first_name\": \"q\",\n      \"industry\": \"Aut harum ab.\",\n      \"job_title\": \"Recusandae sapiente nihil quasi facere excepturi.\",\n      \"last_name\": \"2r\",\n      \"phone\": \"3x9\",\n      \"requirements\": \"Ut nesciunt officia qui ad.\",\n      \"timeline\": \"In eaque quidem modi ullam.\",\n      \"users\": 7547310904358237270,\n      \"warehouses\": 5694002686149836713,\n      \"website\": \"Nihil et sapiente cupiditate.\"\n   }'")
}

func formsRequestDemoUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] forms request-demo", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Request a product demo`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "forms request-demo --body '{\n      \"additional_information\": \"Consequuntur mollitia.\",\n      \"company_name\": \"8he\",\n      \"company_size\": \"Quia amet.\",\n      \"email\": \"alisha@kuvalis.info\",\n      \"first_name\": \"3\",\n      \"last_name\": \"z8t\",\n      \"phone\": \"zn6\",\n      \"preferred_demo_date\": \"2025-02-10\",\n      \"preferred_demo_time\": \"Iusto rem.\"\n   }'")
}

func formsTalkToSalesUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] forms talk-to-sales", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Request a conversation with the sales team`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "forms talk-to-sales --body '{\n      \"company\": \"Sunt sit recusandae et.\",\n      \"current_system\": \"Sapiente ut earum.\",\n      \"email\": \"audie@goodwinrippin.info\",\n      \"message\": \"5z\",\n      \"name\": \"yka\",\n      \"phone\": \"to3\",\n      \"requirements\": \"Sunt ea placeat ipsa illum porro.\",\n      \"timeline\": \"Ut repellendus nulla fugit et quas eos.\",\n      \"users\": 4429188178111975351,\n      \"warehouses\": 6881698125009328414\n   }'")
}

// chatbotUsage displays the usage of the chatbot command and its subcommands.
func chatbotUsage() {
	fmt.Fprintln(os.Stderr, `Website assistant service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] chatbot COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    chat: Send a message to the assistant`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s chatbot COMMAND --help\n", os.Args[0])
}
func chatbotChatUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] chatbot chat", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Send a message to the assistant`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "chatbot chat --body '{\n      \"conversation_history\": [\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         },\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         },\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         }\n      ],\n      \"message\": \"What does SPARS cost?\"\n   }'")
}
