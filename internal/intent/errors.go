package intent

import "errors"

// errNoJSONObject indicates the model output held no balanced JSON object.
var errNoJSONObject = errors.New("intent: no JSON object in model output")
