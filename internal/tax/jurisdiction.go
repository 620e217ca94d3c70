package tax

import "billrecon/internal/domain"

// EntityName is the legal name printed on every document.
const EntityName = "JUBILANT AGRI AND CONSUMER PRODUCTS LIMITED"

// Jurisdiction is the tax treatment and billing entity for one state.
type Jurisdiction struct {
	State      string
	InterState bool
	Entity     domain.Entity
}

var (
	entityUP = domain.Entity{
		Name: EntityName,
		AddressLines: []string{
			"ADD:- NH-24, JUBILANT AGRI AND CONSUMER PRODUCTS LIMITED UNIT-I,",
			"BHARTIAGRAM, GAJRAULA, Amroha, Uttar Pradesh, 244223",
		},
		GSTIN: "09AADCC4657M1Z7",
	}
	entityBihar = domain.Entity{
		Name:         EntityName,
		AddressLines: []string{"ADD:- Word No.61, Khata No.402, Birua Chak, Ranipur Khidki, Patna, Patna, Bihar, 800008"},
		GSTIN:        "10AADCC4657M1ZO",
	}
	entityPunjab = domain.Entity{
		Name: EntityName,
		AddressLines: []string{
			"ADD:- Ground, Khasra no 730,31,32,33,708,722,723, Vlogis Warehouse, Zirakpur Patiala Highway, Nabha, Mohali, SAS Nagar, Punjab, 140603",
		},
		GSTIN: "03AADCC4657M1ZJ",
	}
	entityMP = domain.Entity{
		Name:         EntityName,
		AddressLines: []string{"ADD:- Ground Floor, 29/3,, Talavali Chanda, Indore, Indore, Madhya Pradesh, 452010"},
		GSTIN:        "23AADCC4657M1ZH",
	}
	entityHaryana = domain.Entity{
		Name:         EntityName,
		AddressLines: []string{"ADD:- 3rd, 142, Chimes 142, Sector 44 Road, Sector 44, Gurugram, Gurugram, Haryana, 122003"},
		GSTIN:        "06AADCC4657M1ZD",
	}
	// entityRajasthan also bills the inter-state customers.
	entityRajasthan = domain.Entity{
		Name: EntityName,
		AddressLines: []string{
			"ADD:- Ground Floor, 1233-1235,1243, Kapasan road, Village Singhpur, Tehsil Kapasan, Chittorgarh, Rajasthan, 312207",
		},
		GSTIN: "08AADCC4657M1Z9",
	}
)

// jurisdictions is the single table of per-state billing rules.
var jurisdictions = map[string]Jurisdiction{
	"Uttar Pradesh":  {State: "Uttar Pradesh", Entity: entityUP},
	"Bihar":          {State: "Bihar", Entity: entityBihar},
	"Punjab":         {State: "Punjab", Entity: entityPunjab},
	"Madhya Pradesh": {State: "Madhya Pradesh", Entity: entityMP},
	"Haryana":        {State: "Haryana", Entity: entityHaryana},
	"Rajasthan":      {State: "Rajasthan", Entity: entityRajasthan},
	"Maharashtra":    {State: "Maharashtra", InterState: true, Entity: entityRajasthan},
	"Gujarat":        {State: "Gujarat", InterState: true, Entity: entityRajasthan},
	"Chhattisgarh":   {State: "Chhattisgarh", InterState: true, Entity: entityRajasthan},
	"Uttarakhand":    {State: "Uttarakhand", InterState: true, Entity: entityRajasthan},
}

// Lookup returns the jurisdiction for a classified state. Unknown states get
// the Uttar Pradesh entity with intra-state tax, keeping the requested name.
func Lookup(state string) Jurisdiction {
	if j, ok := jurisdictions[state]; ok {
		return cloneJurisdiction(j)
	}
	j := cloneJurisdiction(jurisdictions[DefaultState])
	j.State = state
	return j
}

func cloneJurisdiction(j Jurisdiction) Jurisdiction {
	j.Entity.AddressLines = append([]string(nil), j.Entity.AddressLines...)
	return j
}
