package page

// Link is one entry of the home page menu.
type Link struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Links lists the demo routes shown on the home page.
var Links = []Link{
	{Path: "/orderNotFound", Description: "Error bound to 404 by its type"},
	{Path: "/dataIntegrityViolation", Description: "Error bound to 409 by a handler declaration"},
	{Path: "/databaseError1", Description: "SQL error handled with the databaseError view"},
	{Path: "/databaseError2", Description: "Data access error handled with the databaseError view"},
	{Path: "/invalidCreditCard", Description: "Mapping-table error, creditCardError view"},
	{Path: "/databaseException", Description: "Mapping-table error, database view"},
	{Path: "/customException", Description: "Business error with the support view"},
	{Path: "/unhandledException", Description: "Unclassified error, default error view"},
	{Path: "/simpleMappingExceptionResolver/on", Description: "Switch the mapping table on"},
	{Path: "/simpleMappingExceptionResolver/off", Description: "Switch the mapping table off"},
	{Path: "/demo5", Description: "Request timestamp and profile"},
	{Path: "/anything/broken", Description: "Failure raised before routing"},
}

const attrLinks = "links"
