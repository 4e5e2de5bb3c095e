package types

// sampleContacts is the demo data set used by the seed command.
var sampleContacts = []map[string]any{
	{FieldFirstName: "Ada", FieldLastName: "Lovelace", FieldEmail: "ada@analytical.org", FieldPhone: "5550100001"},
	{FieldFirstName: "Grace", FieldLastName: "Hopper", FieldEmail: "grace@navy.mil", FieldPhone: "5550100002"},
	{FieldFirstName: "Alan", FieldLastName: "Turing", FieldEmail: "alan@bletchley.uk", FieldPhone: "5550100003"},
	{FieldFirstName: "Edsger", FieldLastName: "Dijkstra", FieldEmail: "edsger@tue.nl", FieldPhone: "5550100004"},
	{FieldFirstName: "Barbara", FieldLastName: "Liskov", FieldEmail: "barbara@mit.edu", FieldPhone: "5550100005"},
	{FieldFirstName: "Donald", FieldLastName: "Knuth", FieldEmail: "don@stanford.edu", FieldPhone: "5550100006"},
	{FieldFirstName: "Margaret", FieldLastName: "Hamilton", FieldEmail: "margaret@apollo.gov", FieldPhone: "5550100007"},
	{FieldFirstName: "Ken", FieldLastName: "Thompson", FieldEmail: "ken@bell-labs.com", FieldPhone: "5550100008"},
	{FieldFirstName: "Frances", FieldLastName: "Allen", FieldEmail: "fran@ibm.com", FieldPhone: "5550100009"},
	{FieldFirstName: "John", FieldLastName: "Smith", FieldEmail: "john@smith.com", FieldPhone: "5550100010"},
	{FieldFirstName: "Jane", FieldLastName: "Doe", FieldEmail: "jane@doe.com", FieldPhone: "5550100011"},
	{FieldFirstName: "Rob", FieldLastName: "Pike", FieldEmail: "rob@bell-labs.com", FieldPhone: "5550100012"},
}

// SampleContacts returns a fresh copy of the demo contacts as field maps.
func SampleContacts() []map[string]any {
	out := make([]map[string]any, len(sampleContacts))
	for i, c := range sampleContacts {
		m := make(map[string]any, len(c))
		for k, v := range c {
			m[k] = v
		}
		out[i] = m
	}
	return out
}
