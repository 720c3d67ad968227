package seed

import "time"

type carrierRow struct {
	name, mc, dot, contact, email, phone string
	insurance                            float64
	serviceLevel, modes                  string
	onTime, claims, rating               float64
	status                               string
}

var carriers = []carrierRow{
	{"FedEx Freight", "MC-299007", "DOT-0226516", "James Holloway", "j.holloway@fedexfreight.com", "1-800-463-3339", 1000000, "Priority", "LTL,FTL", 0.97, 0.005, 4.8, "Active"},
	{"XPO Logistics", "MC-107672", "DOT-0023389", "Sarah Chen", "s.chen@xpo.com", "1-844-742-5976", 500000, "Standard", "LTL,FTL,Intermodal", 0.93, 0.012, 4.4, "Active"},
	{"Old Dominion Freight", "MC-209676", "DOT-0082619", "Marcus Webb", "m.webb@odfl.com", "1-800-432-6335", 750000, "Guaranteed", "LTL", 0.99, 0.003, 4.9, "Active"},
	{"Estes Express Lines", "MC-029405", "DOT-0029405", "Diane Forrest", "d.forrest@estes-express.com", "1-804-353-1900", 500000, "Standard", "LTL", 0.94, 0.008, 4.5, "Active"},
	{"Werner Enterprises", "MC-112923", "DOT-0070278", "Tom Brierly", "t.brierly@werner.com", "1-800-228-2240", 1000000, "Standard", "FTL,Temp Controlled", 0.95, 0.006, 4.6, "Active"},
	{"Spot Carrier LLC", "MC-887412", "DOT-0344892", "Al Martinez", "a.martinez@spotcarrier.com", "555-209-4471", 100000, "Spot", "FTL", 0.88, 0.020, 3.7, "Pending"},
}

// carrier indexes into carriers; tracking may be empty.
type shipmentRow struct {
	origin, destination string
	weight              float64
	dimensions, class   string
	status              string
	carrier             int
	tracking, eta       string
	createdAt           time.Time
}

var shipments = []shipmentRow{
	{"Chicago, IL", "Dallas, TX", 1850, "48x40x48", "70", "In Transit", 0, "OLD-4491-2024", "2026-02-26", at(2026, 2, 23, 16, 0)},
	{"Atlanta, GA", "Los Angeles, CA", 3400, "96x48x60", "85", "In Transit", 1, "XPO-8823-2024", "2026-02-27", at(2026, 2, 22, 15, 0)},
	{"New York, NY", "Miami, FL", 920, "48x48x36", "55", "Delivered", 2, "FDX-2211-2024", "2026-02-23", at(2026, 2, 20, 12, 0)},
	{"Seattle, WA", "Phoenix, AZ", 2100, "80x48x52", "92.5", "Exception", 3, "EST-9944-2024", "2026-02-25", at(2026, 2, 22, 18, 0)},
	{"Houston, TX", "Denver, CO", 660, "40x32x28", "50", "Dispatched", 4, "WNR-5512-2024", "2026-02-28", at(2026, 2, 23, 20, 0)},
	{"Boston, MA", "Charlotte, NC", 450, "36x24x24", "50", "Pending", 0, "", "2026-03-01", at(2026, 2, 24, 9, 0)},
}

// shipment indexes into shipments.
type eventRow struct {
	shipment                 int
	eventType, location, msg string
	at                       time.Time
}

var shipmentEvents = []eventRow{
	{0, "Picked Up", "Chicago, IL", "Shipment picked up from origin", at(2026, 2, 24, 8, 0)},
	{0, "Departed Terminal", "Chicago IL Hub", "Departed Chicago hub", at(2026, 2, 24, 14, 30)},
	{0, "In Transit", "St. Louis, MO", "En route to destination", at(2026, 2, 25, 6, 15)},
	{1, "Picked Up", "Atlanta, GA", "Shipment picked up from origin", at(2026, 2, 23, 9, 0)},
	{1, "Departed Terminal", "Atlanta GA Hub", "Departed Atlanta hub", at(2026, 2, 23, 17, 0)},
	{1, "In Transit", "Dallas, TX", "En route, on schedule", at(2026, 2, 24, 11, 30)},
	{2, "Picked Up", "New York, NY", "Shipment picked up", at(2026, 2, 21, 7, 30)},
	{2, "In Transit", "Philadelphia, PA", "Moving south on I-95", at(2026, 2, 21, 13, 0)},
	{2, "Out for Delivery", "Miami, FL", "Out for final delivery", at(2026, 2, 23, 7, 45)},
	{2, "Delivered", "Miami, FL", "Delivered and signed for by M. Garcia", at(2026, 2, 23, 11, 20)},
	{3, "Picked Up", "Seattle, WA", "Shipment picked up", at(2026, 2, 23, 10, 0)},
	{3, "In Transit", "Portland, OR", "Moving south on I-5", at(2026, 2, 23, 15, 0)},
	{3, "Exception", "Sacramento, CA", "Mechanical delay: trailer breakdown. ETA pushed 24hrs.", at(2026, 2, 24, 9, 0)},
	{4, "Dispatched", "Houston, TX", "Driver assigned and en route to pickup", at(2026, 2, 24, 6, 0)},
}

type orderRow struct {
	customer, po, origin, destination string
	weight                            float64
	dimensions                        string
	createdAt                         time.Time
}

var orders = []orderRow{
	{"Acme Manufacturing", "PO-88210", "Cleveland, OH", "Houston, TX", 4500, "48x40x60", at(2026, 2, 24, 10, 0)},
	{"Buckeye Steel Supply", "PO-88233", "Cleveland, OH", "Houston, TX", 6200, "96x48x48", at(2026, 2, 24, 10, 20)},
	{"Lakeshore Foods", "PO-41907", "Cleveland, OH", "San Antonio, TX", 12800, "48x40x72", at(2026, 2, 24, 11, 5)},
	{"Great Plains Ag", "PO-10455", "Omaha, NE", "Denver, CO", 22000, "53ft trailer", at(2026, 2, 24, 12, 40)},
	{"Pioneer Paper Co", "PO-77102", "Omaha, NE", "Denver, CO", 18500, "48x40x84", at(2026, 2, 24, 13, 15)},
	{"Summit Outdoor", "PO-31188", "Atlanta, GA", "Orlando, FL", 2300, "48x40x48", at(2026, 2, 24, 14, 0)},
}

// shipment indexes into shipments; the carrier is the shipment's carrier.
type invoiceRow struct {
	shipment       int
	number         string
	quoted, actual float64
	status, due    string
}

var invoices = []invoiceRow{
	{0, "INV-2024-0041", 1250.00, 1250.00, "Approved", "2026-03-10"},
	{1, "INV-2024-0042", 2890.00, 3120.50, "Disputed", "2026-03-12"},
	{2, "INV-2024-0043", 780.00, 780.00, "Paid", "2026-03-01"},
	{3, "INV-2024-0044", 1640.00, 1640.00, "Pending", "2026-03-15"},
	{4, "INV-2024-0045", 540.00, 565.00, "Pending", "2026-03-18"},
}

// shipment is -1 for a document not tied to a shipment.
type documentRow struct {
	shipment      int
	docType, name string
	size          int64
	status        string
	uploadedAt    time.Time
}

var documents = []documentRow{
	{0, "BOL", "bol_OLD-4491-2024.pdf", 182344, "Verified", at(2026, 2, 24, 8, 30)},
	{1, "Rate Confirmation", "rate_con_XPO-8823.pdf", 96210, "Verified", at(2026, 2, 23, 8, 10)},
	{2, "POD", "pod_FDX-2211-signed.pdf", 241877, "Verified", at(2026, 2, 23, 12, 0)},
	{2, "Invoice", "inv_2024_0043.pdf", 64512, "Pending", at(2026, 2, 23, 12, 5)},
	{3, "Customs", "customs_declaration_EST-9944.pdf", 310455, "Rejected", at(2026, 2, 24, 9, 45)},
}

type userRow struct {
	name, email, role, department, status string
	lastLogin                              *time.Time
}

var users = []userRow{
	{"Dana Whitfield", "dana.whitfield@thoron.dev", "Admin", "Operations", "Active", ptr(at(2026, 2, 24, 7, 55))},
	{"Luis Ortega", "luis.ortega@thoron.dev", "Dispatcher", "Dispatch", "Active", ptr(at(2026, 2, 24, 6, 40))},
	{"Priya Raman", "priya.raman@thoron.dev", "Dispatcher", "Dispatch", "Active", ptr(at(2026, 2, 23, 18, 5))},
	{"Ken Ashby", "ken.ashby@thoron.dev", "Driver", "Fleet", "Active", ptr(at(2026, 2, 22, 5, 30))},
	{"Maria Garcia", "maria.garcia@acme-mfg.com", "Customer", "Acme Manufacturing", "Invited", nil},
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
