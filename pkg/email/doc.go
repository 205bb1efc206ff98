// Package email implements the transactional email pipeline: a template
// registry rendering typed data into subject/HTML pairs, a fluent message
// builder, and a provider-agnostic send service with bulk fan-out.
//
// Templates are a closed set of render functions dispatched through a
// name-to-renderer map; shared branding chrome (header/footer) is applied by
// a common helper rather than inheritance. Providers implement the Sender
// interface; Resend and Postmark adapters are included, plus a development
// sender that writes messages to disk.
package email
