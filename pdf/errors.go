package pdf

import "errors"

// ErrEncrypted is returned for password-protected documents. The tool
// deliberately does not accept a password, so there is no recovery path.
var ErrEncrypted = errors.New("encrypted PDFs are not supported")
