package constvars

// Account numbers are IBAN-length digit strings; required whenever the
// appointment carries a fee.
const RegexAccountNumber = `^\d{17,34}$`
