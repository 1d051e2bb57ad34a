package core

import "time"

// Employment enumerations kept as stored values.
const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

var (
	EmploymentStatuses = []string{StatusActive, StatusOnLeave, StatusTerminated}
	ContractTypes      = []string{"clt", "pj", "internship", "apprentice"}
	PaymentMethods     = []string{"monthly", "biweekly"}
	Genders            = []string{"M", "F"}
	PaymentTypes       = []string{"pix", "deposit", "cash", "other"}
)

type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName,omitempty"`
	Email     string     `json:"email"`
	Superuser bool       `json:"superuser"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type Employee struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId,omitempty"`
	BirthDate       time.Time  `json:"birthDate"`
	CPF             string     `json:"cpf"`
	RG              string     `json:"rg"`
	CTPS            string     `json:"ctps,omitempty"`
	PISPasep        string     `json:"pisPasep,omitempty"`
	CNH             string     `json:"cnh,omitempty"`
	Phone           string     `json:"phone"`
	HireDate        time.Time  `json:"hireDate"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	Gender          string     `json:"gender"`
	Status          string     `json:"employmentStatus"`
	ContractType    string     `json:"contractType"`
	PaymentMethod   string     `json:"paymentMethod"`
	RoleID          string     `json:"roleId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (Employee) Kind() string { return "Employee" }

type Role struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	PermissionIDs []int  `json:"permissionIds,omitempty"`
}

func (Role) Kind() string { return "Role" }

type Permission struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (Permission) Kind() string { return "Permission" }

type Address struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
}

func (Address) Kind() string { return "Address" }

type PaymentDetails struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	PaymentType   string `json:"paymentType"`
	PixKey        string `json:"pixKey,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AgencyNumber  string `json:"agencyNumber,omitempty"`
}

func (PaymentDetails) Kind() string { return "PaymentDetails" }

func (p PaymentDetails) EmployeeRef() string { return p.EmployeeID }

type Achievement struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
}

func (Achievement) Kind() string { return "Achievement" }

type DataChange struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	FieldName  string    `json:"fieldName"`
	OldValue   string    `json:"oldValue"`
	NewValue   string    `json:"newValue"`
	ChangeDate time.Time `json:"changeDate"`
}

func (DataChange) Kind() string { return "DataChangeHistory" }

func (d DataChange) EmployeeRef() string { return d.EmployeeID }
