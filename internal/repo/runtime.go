// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/profile"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/roleassignment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/usersession"
	"github.com/vaenkat/health-ecosystem-hub/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDepartment is the schema descriptor for department field.
	appointmentDescDepartment := appointmentFields[3].Descriptor()
	// appointment.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	appointment.DepartmentValidator = func() func(string) error {
		validators := appointmentDescDepartment.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(department string) error {
			for _, fn := range fns {
				if err := fn(department); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	hospitalorderMixin := schema.HospitalOrder{}.Mixin()
	hospitalorderMixinFields0 := hospitalorderMixin[0].Fields()
	_ = hospitalorderMixinFields0
	hospitalorderMixinFields1 := hospitalorderMixin[1].Fields()
	_ = hospitalorderMixinFields1
	hospitalorderFields := schema.HospitalOrder{}.Fields()
	_ = hospitalorderFields
	// hospitalorderDescCreatedAt is the schema descriptor for created_at field.
	hospitalorderDescCreatedAt := hospitalorderMixinFields1[0].Descriptor()
	// hospitalorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	hospitalorder.DefaultCreatedAt = hospitalorderDescCreatedAt.Default.(func() time.Time)
	// hospitalorderDescUpdatedAt is the schema descriptor for updated_at field.
	hospitalorderDescUpdatedAt := hospitalorderMixinFields1[1].Descriptor()
	// hospitalorder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hospitalorder.DefaultUpdatedAt = hospitalorderDescUpdatedAt.Default.(func() time.Time)
	// hospitalorder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hospitalorder.UpdateDefaultUpdatedAt = hospitalorderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hospitalorderDescQuantity is the schema descriptor for quantity field.
	hospitalorderDescQuantity := hospitalorderFields[2].Descriptor()
	// hospitalorder.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	hospitalorder.QuantityValidator = hospitalorderDescQuantity.Validators[0].(func(int) error)
	// hospitalorderDescID is the schema descriptor for id field.
	hospitalorderDescID := hospitalorderMixinFields0[0].Descriptor()
	// hospitalorder.DefaultID holds the default value on creation for the id field.
	hospitalorder.DefaultID = hospitalorderDescID.Default.(func() uuid.UUID)
	inventoryitemMixin := schema.InventoryItem{}.Mixin()
	inventoryitemMixinFields0 := inventoryitemMixin[0].Fields()
	_ = inventoryitemMixinFields0
	inventoryitemMixinFields1 := inventoryitemMixin[1].Fields()
	_ = inventoryitemMixinFields1
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemMixinFields1[0].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemMixinFields1[1].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescQuantity is the schema descriptor for quantity field.
	inventoryitemDescQuantity := inventoryitemFields[1].Descriptor()
	// inventoryitem.DefaultQuantity holds the default value on creation for the quantity field.
	inventoryitem.DefaultQuantity = inventoryitemDescQuantity.Default.(int)
	// inventoryitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	inventoryitem.QuantityValidator = inventoryitemDescQuantity.Validators[0].(func(int) error)
	// inventoryitemDescReorderLevel is the schema descriptor for reorder_level field.
	inventoryitemDescReorderLevel := inventoryitemFields[2].Descriptor()
	// inventoryitem.DefaultReorderLevel holds the default value on creation for the reorder_level field.
	inventoryitem.DefaultReorderLevel = inventoryitemDescReorderLevel.Default.(int)
	// inventoryitem.ReorderLevelValidator is a validator for the "reorder_level" field. It is called by the builders before save.
	inventoryitem.ReorderLevelValidator = inventoryitemDescReorderLevel.Validators[0].(func(int) error)
	// inventoryitemDescUnitPrice is the schema descriptor for unit_price field.
	inventoryitemDescUnitPrice := inventoryitemFields[3].Descriptor()
	// inventoryitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	inventoryitem.DefaultUnitPrice = inventoryitemDescUnitPrice.Default.(float64)
	// inventoryitem.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	inventoryitem.UnitPriceValidator = inventoryitemDescUnitPrice.Validators[0].(func(float64) error)
	// inventoryitemDescBatchNumber is the schema descriptor for batch_number field.
	inventoryitemDescBatchNumber := inventoryitemFields[5].Descriptor()
	// inventoryitem.BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	inventoryitem.BatchNumberValidator = inventoryitemDescBatchNumber.Validators[0].(func(string) error)
	// inventoryitemDescLocation is the schema descriptor for location field.
	inventoryitemDescLocation := inventoryitemFields[6].Descriptor()
	// inventoryitem.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	inventoryitem.LocationValidator = inventoryitemDescLocation.Validators[0].(func(string) error)
	// inventoryitemDescSupplier is the schema descriptor for supplier field.
	inventoryitemDescSupplier := inventoryitemFields[7].Descriptor()
	// inventoryitem.SupplierValidator is a validator for the "supplier" field. It is called by the builders before save.
	inventoryitem.SupplierValidator = inventoryitemDescSupplier.Validators[0].(func(string) error)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemMixinFields0[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	labreportMixin := schema.LabReport{}.Mixin()
	labreportMixinFields0 := labreportMixin[0].Fields()
	_ = labreportMixinFields0
	labreportMixinFields1 := labreportMixin[1].Fields()
	_ = labreportMixinFields1
	labreportFields := schema.LabReport{}.Fields()
	_ = labreportFields
	// labreportDescCreatedAt is the schema descriptor for created_at field.
	labreportDescCreatedAt := labreportMixinFields1[0].Descriptor()
	// labreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	labreport.DefaultCreatedAt = labreportDescCreatedAt.Default.(func() time.Time)
	// labreportDescUpdatedAt is the schema descriptor for updated_at field.
	labreportDescUpdatedAt := labreportMixinFields1[1].Descriptor()
	// labreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	labreport.DefaultUpdatedAt = labreportDescUpdatedAt.Default.(func() time.Time)
	// labreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	labreport.UpdateDefaultUpdatedAt = labreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labreportDescTestName is the schema descriptor for test_name field.
	labreportDescTestName := labreportFields[1].Descriptor()
	// labreport.TestNameValidator is a validator for the "test_name" field. It is called by the builders before save.
	labreport.TestNameValidator = func() func(string) error {
		validators := labreportDescTestName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(test_name string) error {
			for _, fn := range fns {
				if err := fn(test_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labreportDescID is the schema descriptor for id field.
	labreportDescID := labreportMixinFields0[0].Descriptor()
	// labreport.DefaultID holds the default value on creation for the id field.
	labreport.DefaultID = labreportDescID.Default.(func() uuid.UUID)
	medicationMixin := schema.Medication{}.Mixin()
	medicationMixinFields0 := medicationMixin[0].Fields()
	_ = medicationMixinFields0
	medicationMixinFields1 := medicationMixin[1].Fields()
	_ = medicationMixinFields1
	medicationFields := schema.Medication{}.Fields()
	_ = medicationFields
	// medicationDescCreatedAt is the schema descriptor for created_at field.
	medicationDescCreatedAt := medicationMixinFields1[0].Descriptor()
	// medication.DefaultCreatedAt holds the default value on creation for the created_at field.
	medication.DefaultCreatedAt = medicationDescCreatedAt.Default.(func() time.Time)
	// medicationDescUpdatedAt is the schema descriptor for updated_at field.
	medicationDescUpdatedAt := medicationMixinFields1[1].Descriptor()
	// medication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medication.DefaultUpdatedAt = medicationDescUpdatedAt.Default.(func() time.Time)
	// medication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medication.UpdateDefaultUpdatedAt = medicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicationDescName is the schema descriptor for name field.
	medicationDescName := medicationFields[0].Descriptor()
	// medication.NameValidator is a validator for the "name" field. It is called by the builders before save.
	medication.NameValidator = func() func(string) error {
		validators := medicationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// medicationDescDosageForm is the schema descriptor for dosage_form field.
	medicationDescDosageForm := medicationFields[2].Descriptor()
	// medication.DosageFormValidator is a validator for the "dosage_form" field. It is called by the builders before save.
	medication.DosageFormValidator = medicationDescDosageForm.Validators[0].(func(string) error)
	// medicationDescManufacturer is the schema descriptor for manufacturer field.
	medicationDescManufacturer := medicationFields[3].Descriptor()
	// medication.ManufacturerValidator is a validator for the "manufacturer" field. It is called by the builders before save.
	medication.ManufacturerValidator = medicationDescManufacturer.Validators[0].(func(string) error)
	// medicationDescID is the schema descriptor for id field.
	medicationDescID := medicationMixinFields0[0].Descriptor()
	// medication.DefaultID holds the default value on creation for the id field.
	medication.DefaultID = medicationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescBloodType is the schema descriptor for blood_type field.
	patientDescBloodType := patientFields[2].Descriptor()
	// patient.BloodTypeValidator is a validator for the "blood_type" field. It is called by the builders before save.
	patient.BloodTypeValidator = func() func(string) error {
		validators := patientDescBloodType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(blood_type string) error {
			for _, fn := range fns {
				if err := fn(blood_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescAllergies is the schema descriptor for allergies field.
	patientDescAllergies := patientFields[3].Descriptor()
	// patient.DefaultAllergies holds the default value on creation for the allergies field.
	patient.DefaultAllergies = patientDescAllergies.Default.([]string)
	// patientDescEmergencyContact is the schema descriptor for emergency_contact field.
	patientDescEmergencyContact := patientFields[4].Descriptor()
	// patient.EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	patient.EmergencyContactValidator = patientDescEmergencyContact.Validators[0].(func(string) error)
	// patientDescEmergencyPhone is the schema descriptor for emergency_phone field.
	patientDescEmergencyPhone := patientFields[5].Descriptor()
	// patient.EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	patient.EmergencyPhoneValidator = patientDescEmergencyPhone.Validators[0].(func(string) error)
	// patientDescMedicalHistory is the schema descriptor for medical_history field.
	patientDescMedicalHistory := patientFields[6].Descriptor()
	// patient.DefaultMedicalHistory holds the default value on creation for the medical_history field.
	patient.DefaultMedicalHistory = patientDescMedicalHistory.Default.([]string)
	// patientDescChronicConditions is the schema descriptor for chronic_conditions field.
	patientDescChronicConditions := patientFields[7].Descriptor()
	// patient.DefaultChronicConditions holds the default value on creation for the chronic_conditions field.
	patient.DefaultChronicConditions = patientDescChronicConditions.Default.([]string)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescDosage is the schema descriptor for dosage field.
	prescriptionDescDosage := prescriptionFields[3].Descriptor()
	// prescription.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	prescription.DosageValidator = func() func(string) error {
		validators := prescriptionDescDosage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(dosage string) error {
			for _, fn := range fns {
				if err := fn(dosage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prescriptionDescFrequency is the schema descriptor for frequency field.
	prescriptionDescFrequency := prescriptionFields[4].Descriptor()
	// prescription.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	prescription.FrequencyValidator = func() func(string) error {
		validators := prescriptionDescFrequency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(frequency string) error {
			for _, fn := range fns {
				if err := fn(frequency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileMixinFields1 := profileMixin[1].Fields()
	_ = profileMixinFields1
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields1[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields1[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescFullName is the schema descriptor for full_name field.
	profileDescFullName := profileFields[1].Descriptor()
	// profile.DefaultFullName holds the default value on creation for the full_name field.
	profile.DefaultFullName = profileDescFullName.Default.(string)
	// profile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	profile.FullNameValidator = profileDescFullName.Validators[0].(func(string) error)
	// profileDescPhone is the schema descriptor for phone field.
	profileDescPhone := profileFields[2].Descriptor()
	// profile.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	profile.PhoneValidator = profileDescPhone.Validators[0].(func(string) error)
	// profileDescAvatarURL is the schema descriptor for avatar_url field.
	profileDescAvatarURL := profileFields[3].Descriptor()
	// profile.AvatarURLValidator is a validator for the "avatar_url" field. It is called by the builders before save.
	profile.AvatarURLValidator = profileDescAvatarURL.Validators[0].(func(string) error)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileMixinFields0[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	roleassignmentMixin := schema.RoleAssignment{}.Mixin()
	roleassignmentMixinFields0 := roleassignmentMixin[0].Fields()
	_ = roleassignmentMixinFields0
	roleassignmentMixinFields1 := roleassignmentMixin[1].Fields()
	_ = roleassignmentMixinFields1
	roleassignmentFields := schema.RoleAssignment{}.Fields()
	_ = roleassignmentFields
	// roleassignmentDescCreatedAt is the schema descriptor for created_at field.
	roleassignmentDescCreatedAt := roleassignmentMixinFields1[0].Descriptor()
	// roleassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	roleassignment.DefaultCreatedAt = roleassignmentDescCreatedAt.Default.(func() time.Time)
	// roleassignmentDescID is the schema descriptor for id field.
	roleassignmentDescID := roleassignmentMixinFields0[0].Descriptor()
	// roleassignment.DefaultID holds the default value on creation for the id field.
	roleassignment.DefaultID = roleassignmentDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[3].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[5].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[8].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
