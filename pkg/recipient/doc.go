// Package recipient loads and validates the people certificates are issued to.
//
// A recipient document is JSON or YAML with a single top-level "recipients"
// sequence:
//
//	{
//	  "recipients": [
//	    {"name": "Ann", "title": "Engineer", "customFields": {"org": "ACME"}},
//	    {"name": "Bo"}
//	  ]
//	}
//
// # Loading
//
// Load is strict and all-or-nothing. The first invalid record aborts the
// load and no recipients are returned:
//
//	list, err := recipient.LoadFile("recipients.json")
//	if err != nil {
//		var rerr *recipient.RecordError
//		if errors.As(err, &rerr) {
//			// rerr.Index is the 0-based offending record
//		}
//	}
//
// Shape errors match ErrMalformedInput; a record without a non-empty string
// name matches ErrMissingRequiredField.
//
// # Validation
//
// Validate cross-checks recipients against the placeholder keys a layout
// requires. It reports every violation and never stops at the first one.
// The result is advisory: callers decide whether to block a batch on it.
//
//	res := recipient.Validate(list, lay.PlaceholderKeys())
//	if !res.Valid {
//		for _, msg := range res.Errors {
//			fmt.Println(msg)
//		}
//	}
package recipient
