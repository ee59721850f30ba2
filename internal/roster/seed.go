package roster

// SampleCustomers is written once when no customer list has ever been saved.
func SampleCustomers() []Customer {
	return []Customer{
		{ID: "5", Name: "Tumo Koloi", Email: "Tumo@pham.co.za", Phone: "+27 76864325", LoyaltyPoints: 25},
		{ID: "4", Name: "Sepolo Late", Email: "joalaboholo@gov.co.ls", Phone: "22334466", LoyaltyPoints: 10},
		{ID: "1", Name: "Hefa Jekola", Email: "Hefa@hotmail.com", Phone: "58120001", LoyaltyPoints: 120},
		{ID: "2", Name: "Patipa Qati", Email: "Asera@outlook.com", Phone: "5437890", LoyaltyPoints: 75},
		{ID: "3", Name: "Lineo Nape", Email: "Sisera@yahoo.com", Phone: "12345678", LoyaltyPoints: 200},
	}
}
